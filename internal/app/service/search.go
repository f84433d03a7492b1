package service

import (
	"context"
	"sort"
	"strings"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/internal/core/validation"
)

// SearchTasks matches a free-text query against title and description.
// The store has no text index, so this is a two-stage operation: fetch the
// full access-scoped candidate set, then match, sort and paginate here.
// Totals reflect the matched set, not the candidate set.
func (s *TaskService) SearchTasks(ctx context.Context, scope domain.AccessScope, query string, opts domain.TaskFilterOptions) (domain.TaskPage, error) {
	if err := validation.ValidateSearchQuery(query); err != nil {
		return domain.TaskPage{}, err
	}
	sortSpec, err := resolveSort(opts)
	if err != nil {
		return domain.TaskPage{}, err
	}
	page, pageSize := clampPagination(opts.Page, opts.PageSize)

	candidates, err := s.tasks.Find(ctx, ports.TaskFilter{Scope: scope}, ports.TaskSort{}, 0, 0)
	if err != nil {
		return domain.TaskPage{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	matched := make([]domain.Task, 0, len(candidates))
	for _, task := range candidates {
		if strings.Contains(strings.ToLower(task.Title), needle) ||
			strings.Contains(strings.ToLower(task.Description), needle) {
			matched = append(matched, task)
		}
	}

	sortTasks(matched, sortSpec)

	total := len(matched)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return domain.TaskPage{
		Items:      matched[start:end],
		Pagination: domain.NewPaginationInfo(page, pageSize, total),
	}, nil
}

// sortTasks stable-sorts in place; tasks equal on the key keep their
// retrieval order.
func sortTasks(tasks []domain.Task, spec ports.TaskSort) {
	sort.SliceStable(tasks, func(i, j int) bool {
		c := compareTasks(tasks[i], tasks[j], spec.Field)
		if spec.Order == domain.SortDesc {
			return c > 0
		}
		return c < 0
	})
}

// compareTasks orders by the sort key. Priority uses its ordinal rank, not
// string order; dates are ISO strings so lexicographic and chronological
// order coincide.
func compareTasks(a, b domain.Task, field domain.SortField) int {
	switch field {
	case domain.SortByPriority:
		return a.Priority.Rank() - b.Priority.Rank()
	case domain.SortByDueDate:
		return strings.Compare(a.DueDate, b.DueDate)
	case domain.SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case domain.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case domain.SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}
