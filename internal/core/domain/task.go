package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Rank is the sort ordinal for priorities: LOW < MEDIUM < HIGH.
// Unknown values rank below LOW.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityLow:
		return 1
	case TaskPriorityMedium:
		return 2
	case TaskPriorityHigh:
		return 3
	}
	return 0
}

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     string // YYYY-MM-DD
	CreatedBy   string
	AssignedTo  *string
	Timezone    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Overdue reports whether the task is past due relative to the given date.
// A DONE task is never overdue, whatever its due date.
func (t Task) Overdue(today string) bool {
	return t.Status != TaskStatusDone && t.DueDate != "" && t.DueDate < today
}

type User struct {
	ID       string
	Name     string
	Timezone string
	Admin    bool
}

// AccessScope restricts which tasks a caller may see. Non-admin callers see
// tasks they created or are assigned to; admins see everything.
type AccessScope struct {
	CallerID string
	Admin    bool
}

type SortField string

const (
	SortByDueDate   SortField = "dueDate"
	SortByPriority  SortField = "priority"
	SortByStatus    SortField = "status"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByTitle     SortField = "title"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByDueDate, SortByPriority, SortByStatus, SortByCreatedAt, SortByUpdatedAt, SortByTitle:
		return true
	}
	return false
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

type TaskFilterOptions struct {
	Status     *TaskStatus
	Priority   *TaskPriority
	AssignedTo *string
	CreatedBy  *string
	StartDate  string
	EndDate    string
	Page       int
	PageSize   int
	SortBy     SortField
	SortOrder  SortOrder
}

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     string
	AssignedTo  *string
	Timezone    string
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	DueDate     *string
	AssignedTo  *string
	Timezone    *string
}

func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil &&
		in.Description == nil &&
		in.Status == nil &&
		in.Priority == nil &&
		in.DueDate == nil &&
		in.AssignedTo == nil &&
		in.Timezone == nil
}

type TaskPage struct {
	Items      []Task
	Pagination PaginationInfo
}

// BatchOperationResult aggregates per-item outcomes of a batch mutation.
// All slices preserve the input order of the batch request.
type BatchOperationResult struct {
	Successful    int
	Failed        int
	SuccessfulIDs []string
	FailedIDs     []string
	Errors        map[string]string
}

type TaskStatistics struct {
	Total      int
	ByStatus   map[TaskStatus]int
	ByPriority map[TaskPriority]int
	Overdue    int
}
