package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/internal/core/validation"
)

const defaultTimezone = "UTC"

// TaskService is the façade over validation, access scoping, querying,
// batch mutation and statistics. It holds only immutable dependencies and
// is safe for concurrent use.
type TaskService struct {
	tasks ports.TaskRepository
	users ports.UserRepository
	clock domain.Clock
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, clock domain.Clock) *TaskService {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &TaskService{tasks: tasks, users: users, clock: clock}
}

func (s *TaskService) CreateTask(ctx context.Context, callerID string, in domain.CreateTaskInput) (domain.Task, error) {
	if err := validation.ValidateTitle(in.Title); err != nil {
		return domain.Task{}, err
	}
	if err := validation.ValidateDescription(in.Description); err != nil {
		return domain.Task{}, err
	}
	if err := validation.ValidateDueDate(in.DueDate, s.clock); err != nil {
		return domain.Task{}, err
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	if !priority.Valid() {
		return domain.Task{}, domain.NewValidationError(fmt.Sprintf("unknown priority %q", priority))
	}
	if in.Timezone != "" {
		if err := validation.ValidateTimezone(in.Timezone); err != nil {
			return domain.Task{}, err
		}
	}

	if in.AssignedTo != nil {
		if _, err := s.users.FindOne(ctx, *in.AssignedTo); err != nil {
			return domain.Task{}, err
		}
	}

	creator, err := s.users.FindOne(ctx, callerID)
	if err != nil {
		return domain.Task{}, err
	}

	timezone := in.Timezone
	if timezone == "" {
		timezone = creator.Timezone
		if timezone == "" {
			timezone = defaultTimezone
		}
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      domain.TaskStatusTodo,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedBy:   callerID,
		AssignedTo:  in.AssignedTo,
		Timezone:    timezone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Insert(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (domain.Task, error) {
	if err := validation.ValidateTaskID(id); err != nil {
		return domain.Task{}, err
	}
	return s.tasks.FindOne(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, callerID, id string, in domain.UpdateTaskInput) (domain.Task, error) {
	if err := validation.ValidateTaskID(id); err != nil {
		return domain.Task{}, err
	}
	if in.Empty() {
		return domain.Task{}, domain.NewValidationError("nothing to update")
	}

	// Fail fast on every present field before touching the store.
	if in.Title != nil {
		if err := validation.ValidateTitle(*in.Title); err != nil {
			return domain.Task{}, err
		}
	}
	if in.Description != nil {
		if err := validation.ValidateDescription(*in.Description); err != nil {
			return domain.Task{}, err
		}
	}
	if in.Status != nil && !in.Status.Valid() {
		return domain.Task{}, domain.NewValidationError(fmt.Sprintf("unknown status %q", *in.Status))
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return domain.Task{}, domain.NewValidationError(fmt.Sprintf("unknown priority %q", *in.Priority))
	}
	if in.DueDate != nil {
		if err := validation.ValidateDueDate(*in.DueDate, s.clock); err != nil {
			return domain.Task{}, err
		}
	}
	if in.Timezone != nil {
		if err := validation.ValidateTimezone(*in.Timezone); err != nil {
			return domain.Task{}, err
		}
	}

	task, err := s.tasks.FindOne(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !canModify(task, callerID) {
		return domain.Task{}, domain.NewForbiddenError("only the creator or assignee may update a task")
	}

	if in.AssignedTo != nil {
		if _, err := s.users.FindOne(ctx, *in.AssignedTo); err != nil {
			return domain.Task{}, err
		}
	}

	patch := ports.TaskPatch{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		Timezone:    in.Timezone,
		UpdatedAt:   time.Now().UTC(),
	}
	if in.AssignedTo != nil {
		patch.AssignedTo = in.AssignedTo
		patch.AssignedToSet = true
	}
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		patch.Title = &trimmed
	}

	if err := s.tasks.UpdateOne(ctx, id, patch); err != nil {
		return domain.Task{}, err
	}
	return s.tasks.FindOne(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, callerID, id string) error {
	if err := validation.ValidateTaskID(id); err != nil {
		return err
	}
	task, err := s.tasks.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if task.CreatedBy != callerID {
		return domain.NewForbiddenError("only the creator may delete a task")
	}
	return s.tasks.DeleteOne(ctx, id)
}

// canModify: creator or current assignee.
func canModify(task domain.Task, callerID string) bool {
	if task.CreatedBy == callerID {
		return true
	}
	return task.AssignedTo != nil && *task.AssignedTo == callerID
}
