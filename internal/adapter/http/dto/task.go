package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"dueDate"`
	CreatedBy   string  `json:"createdBy"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	Timezone    string  `json:"timezone"`
	IsOverdue   bool    `json:"isOverdue"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     string  `json:"dueDate" binding:"required"`
	AssignedTo  *string `json:"assignedTo"`
	Timezone    string  `json:"timezone"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *string `json:"dueDate"`
	AssignedTo  *string `json:"assignedTo"`
	Timezone    *string `json:"timezone"`
}

type ListTasksQuery struct {
	Status     *string `form:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority   *string `form:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	AssignedTo *string `form:"assignedTo"`
	CreatedBy  *string `form:"createdBy"`
	StartDate  string  `form:"startDate"`
	EndDate    string  `form:"endDate"`
	Page       int     `form:"page,default=1"`
	PageSize   int     `form:"pageSize,default=20"`
	SortBy     string  `form:"sortBy"`
	SortOrder  string  `form:"sortOrder"`
	Query      string  `form:"q"`
}

type PaginationInfo struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

type PaginatedTaskResponse struct {
	Items      []TaskItem     `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

type BatchRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

type BatchStatusRequest struct {
	IDs    []string `json:"ids" binding:"required"`
	Status string   `json:"status" binding:"required,oneof=TODO IN_PROGRESS DONE"`
}

type BatchOperationResult struct {
	Successful    int               `json:"successful"`
	Failed        int               `json:"failed"`
	SuccessfulIDs []string          `json:"successfulIds"`
	FailedIDs     []string          `json:"failedIds"`
	Errors        map[string]string `json:"errors"`
}

type TaskStatistics struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	Overdue    int            `json:"overdue"`
}

type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}
