package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

func searchFixtures() []domain.Task {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	task := func(id, title, description string, priority domain.TaskPriority, offset int) domain.Task {
		return domain.Task{
			ID:          id,
			Title:       title,
			Description: description,
			Status:      domain.TaskStatusTodo,
			Priority:    priority,
			DueDate:     "2026-09-01",
			CreatedBy:   creatorID,
			CreatedAt:   base.Add(time.Duration(offset) * time.Minute),
			UpdatedAt:   base.Add(time.Duration(offset) * time.Minute),
		}
	}
	return []domain.Task{
		task("00000000-0000-4000-8000-000000000001", "Alpha rollout", "prepare staging", domain.TaskPriorityHigh, 0),
		task("00000000-0000-4000-8000-000000000002", "Beta cleanup", "remove ALPHA flags", domain.TaskPriorityLow, 1),
		task("00000000-0000-4000-8000-000000000003", "Gamma report", "quarterly numbers", domain.TaskPriorityMedium, 2),
		task("00000000-0000-4000-8000-000000000004", "alpha docs", "write the guide", domain.TaskPriorityLow, 3),
	}
}

func expectCandidateFetch(taskRepo *taskRepositoryMock, tasks []domain.Task) {
	// The candidate fetch carries only the scope: no pagination, no sort.
	taskRepo.On("Find", mock.Anything, mock.MatchedBy(func(filter ports.TaskFilter) bool {
		return filter.Scope.CallerID == creatorID && filter.Status == nil && filter.Priority == nil
	}), ports.TaskSort{}, 0, 0).Return(tasks, nil).Once()
}

func TestSearchTasks_RejectsInvalidQuery(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	svc := newTestService(taskRepo, new(userRepositoryMock))
	scope := domain.AccessScope{CallerID: creatorID}

	_, err := svc.SearchTasks(context.Background(), scope, "a", domain.TaskFilterOptions{})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.SearchTasks(context.Background(), scope, "drop everything", domain.TaskFilterOptions{})
	require.ErrorIs(t, err, domain.ErrValidation)

	taskRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchTasks_MatchesTitleOrDescriptionCaseInsensitive(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	expectCandidateFetch(taskRepo, searchFixtures())

	svc := newTestService(taskRepo, new(userRepositoryMock))
	page, err := svc.SearchTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, "alpha", domain.TaskFilterOptions{
		SortBy:    domain.SortByCreatedAt,
		SortOrder: domain.SortAsc,
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	// Title match, description match ("ALPHA flags"), lowercase title match.
	require.Equal(t, "Alpha rollout", page.Items[0].Title)
	require.Equal(t, "Beta cleanup", page.Items[1].Title)
	require.Equal(t, "alpha docs", page.Items[2].Title)
	require.Equal(t, 3, page.Pagination.TotalItems)
	taskRepo.AssertExpectations(t)
}

func TestSearchTasks_SortsByPriorityOrdinal(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	expectCandidateFetch(taskRepo, searchFixtures())

	svc := newTestService(taskRepo, new(userRepositoryMock))
	page, err := svc.SearchTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, "alpha", domain.TaskFilterOptions{
		SortBy:    domain.SortByPriority,
		SortOrder: domain.SortAsc,
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	// LOW < MEDIUM < HIGH, never alphabetical. The two LOW matches keep
	// their retrieval order (stable sort).
	require.Equal(t, domain.TaskPriorityLow, page.Items[0].Priority)
	require.Equal(t, "Beta cleanup", page.Items[0].Title)
	require.Equal(t, domain.TaskPriorityLow, page.Items[1].Priority)
	require.Equal(t, "alpha docs", page.Items[1].Title)
	require.Equal(t, domain.TaskPriorityHigh, page.Items[2].Priority)
}

func TestSearchTasks_PaginatesMatchedSet(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	expectCandidateFetch(taskRepo, searchFixtures())

	svc := newTestService(taskRepo, new(userRepositoryMock))
	page, err := svc.SearchTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, "alpha", domain.TaskFilterOptions{
		SortBy:    domain.SortByCreatedAt,
		SortOrder: domain.SortAsc,
		Page:      2,
		PageSize:  2,
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "alpha docs", page.Items[0].Title)
	require.Equal(t, 3, page.Pagination.TotalItems)
	require.Equal(t, 2, page.Pagination.TotalPages)
	require.True(t, page.Pagination.HasPrevious)
	require.False(t, page.Pagination.HasNext)
}

func TestSearchTasks_PageBeyondMatches(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	expectCandidateFetch(taskRepo, searchFixtures())

	svc := newTestService(taskRepo, new(userRepositoryMock))
	page, err := svc.SearchTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, "alpha", domain.TaskFilterOptions{
		Page:     9,
		PageSize: 10,
	})

	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 3, page.Pagination.TotalItems)
}

func TestSearchTasks_NoMatches(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	expectCandidateFetch(taskRepo, searchFixtures())

	svc := newTestService(taskRepo, new(userRepositoryMock))
	page, err := svc.SearchTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, "zz nothing", domain.TaskFilterOptions{})

	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 0, page.Pagination.TotalItems)
	require.Equal(t, 1, page.Pagination.TotalPages)
}
