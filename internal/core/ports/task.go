package ports

import (
	"context"
	"time"

	"taskboard/internal/core/domain"
)

// TaskFilter is the filter contract the store supports: the caller's access
// scope plus optional equality filters and an inclusive due-date range.
// The scope is always applied; there is no way to opt out of it.
type TaskFilter struct {
	Scope      domain.AccessScope
	Status     *domain.TaskStatus
	Priority   *domain.TaskPriority
	AssignedTo *string
	CreatedBy  *string
	DueFrom    string
	DueTo      string
}

// TaskSort is a single-key sort. The zero value means insertion order.
type TaskSort struct {
	Field domain.SortField
	Order domain.SortOrder
}

// TaskPatch is a partial update. Nil fields are left untouched.
// AssignedToSet distinguishes "clear the assignee" from "leave it alone".
type TaskPatch struct {
	Title         *string
	Description   *string
	Status        *domain.TaskStatus
	Priority      *domain.TaskPriority
	DueDate       *string
	AssignedTo    *string
	AssignedToSet bool
	Timezone      *string
	UpdatedAt     time.Time
}

type TaskRepository interface {
	// Find returns tasks matching the filter. limit == 0 means no limit.
	Find(ctx context.Context, filter TaskFilter, sort TaskSort, skip, limit int) ([]domain.Task, error)
	Count(ctx context.Context, filter TaskFilter) (int, error)
	FindOne(ctx context.Context, id string) (domain.Task, error)
	Insert(ctx context.Context, task domain.Task) error
	UpdateOne(ctx context.Context, id string, patch TaskPatch) error
	DeleteOne(ctx context.Context, id string) error
}

type UserRepository interface {
	FindOne(ctx context.Context, id string) (domain.User, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, callerID string, in domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	UpdateTask(ctx context.Context, callerID, id string, in domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, callerID, id string) error
	ListTasks(ctx context.Context, scope domain.AccessScope, opts domain.TaskFilterOptions) (domain.TaskPage, error)
	SearchTasks(ctx context.Context, scope domain.AccessScope, query string, opts domain.TaskFilterOptions) (domain.TaskPage, error)
	BatchDeleteTasks(ctx context.Context, callerID string, ids []string) (domain.BatchOperationResult, error)
	BatchUpdateTaskStatus(ctx context.Context, callerID string, ids []string, status domain.TaskStatus) (domain.BatchOperationResult, error)
	GetStatistics(ctx context.Context, scope domain.AccessScope) (domain.TaskStatistics, error)
}
