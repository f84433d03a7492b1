package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskboard/internal/app/service"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Find(ctx context.Context, filter ports.TaskFilter, sort ports.TaskSort, skip, limit int) ([]domain.Task, error) {
	args := m.Called(ctx, filter, sort, skip, limit)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Count(ctx context.Context, filter ports.TaskFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *taskRepositoryMock) FindOne(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) Insert(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) UpdateOne(ctx context.Context, id string, patch ports.TaskPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *taskRepositoryMock) DeleteOne(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) FindOne(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

const testToday = "2026-08-24"

func newTestService(tasks *taskRepositoryMock, users *userRepositoryMock) *service.TaskService {
	return service.NewTaskService(tasks, users, domain.FixedClock(testToday))
}
