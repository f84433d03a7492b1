package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

// GetStatistics scans the caller-scoped task set once and tallies counts
// per status, per priority and overdue against the injected clock.
func (s *TaskService) GetStatistics(ctx context.Context, scope domain.AccessScope) (domain.TaskStatistics, error) {
	tasks, err := s.tasks.Find(ctx, ports.TaskFilter{Scope: scope}, ports.TaskSort{}, 0, 0)
	if err != nil {
		return domain.TaskStatistics{}, err
	}

	stats := domain.TaskStatistics{
		ByStatus: map[domain.TaskStatus]int{
			domain.TaskStatusTodo:       0,
			domain.TaskStatusInProgress: 0,
			domain.TaskStatusDone:       0,
		},
		ByPriority: map[domain.TaskPriority]int{
			domain.TaskPriorityLow:    0,
			domain.TaskPriorityMedium: 0,
			domain.TaskPriorityHigh:   0,
		},
	}

	today := s.clock.Today()
	for _, task := range tasks {
		stats.Total++
		stats.ByStatus[task.Status]++
		stats.ByPriority[task.Priority]++
		if task.Overdue(today) {
			stats.Overdue++
		}
	}
	return stats, nil
}
