package service

import (
	"context"
	"fmt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/internal/core/validation"
)

const defaultPageSize = 20

// ListTasks composes the caller's access scope with the explicit filters,
// clamps pagination and runs a count plus a page query over the same filter.
func (s *TaskService) ListTasks(ctx context.Context, scope domain.AccessScope, opts domain.TaskFilterOptions) (domain.TaskPage, error) {
	sortSpec, err := resolveSort(opts)
	if err != nil {
		return domain.TaskPage{}, err
	}
	filter, err := buildFilter(scope, opts)
	if err != nil {
		return domain.TaskPage{}, err
	}
	page, pageSize := clampPagination(opts.Page, opts.PageSize)

	total, err := s.tasks.Count(ctx, filter)
	if err != nil {
		return domain.TaskPage{}, err
	}
	items, err := s.tasks.Find(ctx, filter, sortSpec, (page-1)*pageSize, pageSize)
	if err != nil {
		return domain.TaskPage{}, err
	}
	return domain.TaskPage{
		Items:      items,
		Pagination: domain.NewPaginationInfo(page, pageSize, total),
	}, nil
}

func buildFilter(scope domain.AccessScope, opts domain.TaskFilterOptions) (ports.TaskFilter, error) {
	if opts.Status != nil && !opts.Status.Valid() {
		return ports.TaskFilter{}, domain.NewValidationError(fmt.Sprintf("unknown status %q", *opts.Status))
	}
	if opts.Priority != nil && !opts.Priority.Valid() {
		return ports.TaskFilter{}, domain.NewValidationError(fmt.Sprintf("unknown priority %q", *opts.Priority))
	}
	if opts.StartDate != "" {
		if err := validation.ValidateDate(opts.StartDate); err != nil {
			return ports.TaskFilter{}, err
		}
	}
	if opts.EndDate != "" {
		if err := validation.ValidateDate(opts.EndDate); err != nil {
			return ports.TaskFilter{}, err
		}
	}
	if opts.StartDate != "" && opts.EndDate != "" && opts.StartDate > opts.EndDate {
		return ports.TaskFilter{}, domain.NewValidationError("startDate must not be after endDate")
	}
	return ports.TaskFilter{
		Scope:      scope,
		Status:     opts.Status,
		Priority:   opts.Priority,
		AssignedTo: opts.AssignedTo,
		CreatedBy:  opts.CreatedBy,
		DueFrom:    opts.StartDate,
		DueTo:      opts.EndDate,
	}, nil
}

// clampPagination never errors on out-of-range client input: page is raised
// to 1, pageSize is pulled into [1, 100] with a default for the zero value.
func clampPagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > validation.MaxPageSize {
		pageSize = validation.MaxPageSize
	}
	return page, pageSize
}

func resolveSort(opts domain.TaskFilterOptions) (ports.TaskSort, error) {
	field := opts.SortBy
	if field == "" {
		field = domain.SortByCreatedAt
	}
	if !field.Valid() {
		return ports.TaskSort{}, domain.NewValidationError(fmt.Sprintf("unsupported sort field %q", opts.SortBy))
	}
	order := opts.SortOrder
	if order == "" {
		order = domain.SortDesc
	}
	if !order.Valid() {
		return ports.TaskSort{}, domain.NewValidationError(fmt.Sprintf("unsupported sort order %q", opts.SortOrder))
	}
	return ports.TaskSort{Field: field, Order: order}, nil
}
