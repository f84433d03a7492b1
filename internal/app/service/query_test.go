package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

func TestListTasks_AppliesCallerScope(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	scope := domain.AccessScope{CallerID: creatorID}

	scoped := mock.MatchedBy(func(filter ports.TaskFilter) bool {
		return filter.Scope.CallerID == creatorID && !filter.Scope.Admin
	})
	taskRepo.On("Count", mock.Anything, scoped).Return(1, nil).Once()
	taskRepo.On("Find", mock.Anything, scoped, ports.TaskSort{Field: domain.SortByCreatedAt, Order: domain.SortDesc}, 0, 20).
		Return([]domain.Task{fixtureTask()}, nil).Once()

	svc := newTestService(taskRepo, new(userRepositoryMock))
	page, err := svc.ListTasks(context.Background(), scope, domain.TaskFilterOptions{})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, 1, page.Pagination.TotalItems)
	taskRepo.AssertExpectations(t)
}

func TestListTasks_ComposesExplicitFilters(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	status := domain.TaskStatusTodo
	priority := domain.TaskPriorityHigh

	expected := mock.MatchedBy(func(filter ports.TaskFilter) bool {
		return filter.Status != nil && *filter.Status == status &&
			filter.Priority != nil && *filter.Priority == priority &&
			filter.DueFrom == "2026-08-01" && filter.DueTo == "2026-08-31" &&
			filter.Scope.CallerID == creatorID
	})
	taskRepo.On("Count", mock.Anything, expected).Return(0, nil).Once()
	taskRepo.On("Find", mock.Anything, expected, mock.Anything, 0, 20).Return([]domain.Task{}, nil).Once()

	svc := newTestService(taskRepo, new(userRepositoryMock))
	_, err := svc.ListTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, domain.TaskFilterOptions{
		Status:    &status,
		Priority:  &priority,
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
	})

	require.NoError(t, err)
	taskRepo.AssertExpectations(t)
}

func TestListTasks_ClampsPagination(t *testing.T) {
	taskRepo := new(taskRepositoryMock)

	// page -5 becomes 1, pageSize 1000 becomes 100: clamped, never an error.
	taskRepo.On("Count", mock.Anything, mock.Anything).Return(0, nil).Once()
	taskRepo.On("Find", mock.Anything, mock.Anything, mock.Anything, 0, 100).Return([]domain.Task{}, nil).Once()

	svc := newTestService(taskRepo, new(userRepositoryMock))
	page, err := svc.ListTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, domain.TaskFilterOptions{
		Page:     -5,
		PageSize: 1000,
	})

	require.NoError(t, err)
	require.Equal(t, 1, page.Pagination.Page)
	require.Equal(t, 100, page.Pagination.PageSize)
	taskRepo.AssertExpectations(t)
}

func TestListTasks_SkipFollowsPage(t *testing.T) {
	taskRepo := new(taskRepositoryMock)

	taskRepo.On("Count", mock.Anything, mock.Anything).Return(25, nil).Once()
	taskRepo.On("Find", mock.Anything, mock.Anything, mock.Anything, 20, 10).Return([]domain.Task{}, nil).Once()

	svc := newTestService(taskRepo, new(userRepositoryMock))
	page, err := svc.ListTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, domain.TaskFilterOptions{
		Page:     3,
		PageSize: 10,
	})

	require.NoError(t, err)
	require.Equal(t, 3, page.Pagination.TotalPages)
	require.False(t, page.Pagination.HasNext)
	require.True(t, page.Pagination.HasPrevious)
	taskRepo.AssertExpectations(t)
}

func TestListTasks_EmptyResultHasOnePage(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("Count", mock.Anything, mock.Anything).Return(0, nil).Once()
	taskRepo.On("Find", mock.Anything, mock.Anything, mock.Anything, 0, 20).Return([]domain.Task{}, nil).Once()

	svc := newTestService(taskRepo, new(userRepositoryMock))
	page, err := svc.ListTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, domain.TaskFilterOptions{})

	require.NoError(t, err)
	require.Equal(t, 1, page.Pagination.TotalPages)
	require.False(t, page.Pagination.HasNext)
}

func TestListTasks_RejectsInvertedDateRange(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	svc := newTestService(taskRepo, new(userRepositoryMock))

	_, err := svc.ListTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, domain.TaskFilterOptions{
		StartDate: "2026-05-01",
		EndDate:   "2026-04-01",
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	taskRepo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestListTasks_RejectsUnknownSortField(t *testing.T) {
	svc := newTestService(new(taskRepositoryMock), new(userRepositoryMock))

	_, err := svc.ListTasks(context.Background(), domain.AccessScope{CallerID: creatorID}, domain.TaskFilterOptions{
		SortBy: "favoriteColor",
	})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestListTasks_AdminScopeIsUnrestricted(t *testing.T) {
	taskRepo := new(taskRepositoryMock)

	unrestricted := mock.MatchedBy(func(filter ports.TaskFilter) bool {
		return filter.Scope.Admin
	})
	taskRepo.On("Count", mock.Anything, unrestricted).Return(2, nil).Once()
	taskRepo.On("Find", mock.Anything, unrestricted, mock.Anything, 0, 20).Return([]domain.Task{}, nil).Once()

	svc := newTestService(taskRepo, new(userRepositoryMock))
	_, err := svc.ListTasks(context.Background(), domain.AccessScope{CallerID: "admin-1", Admin: true}, domain.TaskFilterOptions{})

	require.NoError(t, err)
	taskRepo.AssertExpectations(t)
}
