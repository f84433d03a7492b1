package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
	clock       domain.Clock
}

func NewTaskHandler(taskService ports.TaskService, clock domain.Clock) *TaskHandler {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &TaskHandler{taskService: taskService, clock: clock}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadPayload(c, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.CallerID(c), domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Timezone:    req.Timezone,
	})
	if err != nil {
		h.respondError(c, err, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.clock.Today()))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to get task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.clock.Today()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadPayload(c, err)
		return
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}
	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.CallerID(c), c.Param("id"), domain.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Timezone:    req.Timezone,
	})
	if err != nil {
		h.respondError(c, err, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.clock.Today()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete task")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskResponse{Deleted: true})
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	query, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	page, err := h.taskService.ListTasks(c.Request.Context(), middleware.CallerScope(c), listQueryToOptions(query))
	if err != nil {
		h.respondError(c, err, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToPaginatedResponse(page, h.clock.Today()))
}

func (h *TaskHandler) SearchTasks(c *gin.Context) {
	query, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	page, err := h.taskService.SearchTasks(c.Request.Context(), middleware.CallerScope(c), query.Query, listQueryToOptions(query))
	if err != nil {
		h.respondError(c, err, "failed to search tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToPaginatedResponse(page, h.clock.Today()))
}

func (h *TaskHandler) BatchDeleteTasks(c *gin.Context) {
	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadPayload(c, err)
		return
	}

	result, err := h.taskService.BatchDeleteTasks(c.Request.Context(), middleware.CallerID(c), req.IDs)
	if err != nil {
		h.respondError(c, err, "failed to run batch delete")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBatchResult(result))
}

func (h *TaskHandler) BatchUpdateTaskStatus(c *gin.Context) {
	var req dto.BatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadPayload(c, err)
		return
	}

	result, err := h.taskService.BatchUpdateTaskStatus(c.Request.Context(), middleware.CallerID(c), req.IDs, domain.TaskStatus(req.Status))
	if err != nil {
		h.respondError(c, err, "failed to run batch status update")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBatchResult(result))
}

func (h *TaskHandler) GetStatistics(c *gin.Context) {
	stats, err := h.taskService.GetStatistics(c.Request.Context(), middleware.CallerScope(c))
	if err != nil {
		h.respondError(c, err, "failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatistics(stats))
}

func (h *TaskHandler) bindListQuery(c *gin.Context) (dto.ListTasksQuery, bool) {
	var query dto.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.respondBadPayload(c, err)
		return dto.ListTasksQuery{}, false
	}
	return query, true
}

func listQueryToOptions(query dto.ListTasksQuery) domain.TaskFilterOptions {
	opts := domain.TaskFilterOptions{
		AssignedTo: query.AssignedTo,
		CreatedBy:  query.CreatedBy,
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     domain.SortField(query.SortBy),
		SortOrder:  domain.SortOrder(query.SortOrder),
	}
	if query.Status != nil {
		value := domain.TaskStatus(*query.Status)
		opts.Status = &value
	}
	if query.Priority != nil {
		value := domain.TaskPriority(*query.Priority)
		opts.Priority = &value
	}
	return opts
}

func (h *TaskHandler) respondBadPayload(c *gin.Context, err error) {
	lang := middleware.GetLang(c)
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateDetailedError(http.StatusBadRequest, apierrors.MsgInvalidInput, lang, err.Error()),
	)
}

// respondError maps domain error kinds onto HTTP statuses. Unexpected
// errors are logged and masked as 500s.
func (h *TaskHandler) respondError(c *gin.Context, err error, logMsg string) {
	lang := middleware.GetLang(c)
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateDetailedError(http.StatusBadRequest, apierrors.MsgInvalidInput, lang, err.Error()),
		)
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
		)
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateDetailedError(http.StatusForbidden, apierrors.MsgForbidden, lang, err.Error()),
		)
	case errors.Is(err, domain.ErrConflict):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateDetailedError(http.StatusConflict, apierrors.MsgConflict, lang, err.Error()),
		)
	default:
		zap.L().Error(logMsg, zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
	}
}
