package mapper

import (
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

// ToTaskItem converts a domain task for the wire. isOverdue is derived
// against the given date, never stored.
func ToTaskItem(task domain.Task, today string) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedBy:   task.CreatedBy,
		Timezone:    task.Timezone,
		IsOverdue:   task.Overdue(today),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
	if task.AssignedTo != nil {
		value := *task.AssignedTo
		item.AssignedTo = &value
	}
	return item
}

func ToTaskItems(tasks []domain.Task, today string) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, today))
	}
	return items
}

func ToPaginatedResponse(page domain.TaskPage, today string) dto.PaginatedTaskResponse {
	return dto.PaginatedTaskResponse{
		Items:      ToTaskItems(page.Items, today),
		Pagination: ToPaginationInfo(page.Pagination),
	}
}

func ToPaginationInfo(info domain.PaginationInfo) dto.PaginationInfo {
	return dto.PaginationInfo{
		Page:        info.Page,
		PageSize:    info.PageSize,
		TotalItems:  info.TotalItems,
		TotalPages:  info.TotalPages,
		HasNext:     info.HasNext,
		HasPrevious: info.HasPrevious,
	}
}

func ToBatchResult(result domain.BatchOperationResult) dto.BatchOperationResult {
	return dto.BatchOperationResult{
		Successful:    result.Successful,
		Failed:        result.Failed,
		SuccessfulIDs: result.SuccessfulIDs,
		FailedIDs:     result.FailedIDs,
		Errors:        result.Errors,
	}
}

func ToStatistics(stats domain.TaskStatistics) dto.TaskStatistics {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	byPriority := make(map[string]int, len(stats.ByPriority))
	for priority, count := range stats.ByPriority {
		byPriority[string(priority)] = count
	}
	return dto.TaskStatistics{
		Total:      stats.Total,
		ByStatus:   byStatus,
		ByPriority: byPriority,
		Overdue:    stats.Overdue,
	}
}
