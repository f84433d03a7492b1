package service

import (
	"context"
	"fmt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/validation"
)

// BatchDeleteTasks deletes every id independently. Ownership is re-checked
// per item by DeleteTask, so a batch can partially succeed.
func (s *TaskService) BatchDeleteTasks(ctx context.Context, callerID string, ids []string) (domain.BatchOperationResult, error) {
	return s.runBatch(ctx, ids, func(ctx context.Context, id string) error {
		return s.DeleteTask(ctx, callerID, id)
	})
}

// BatchUpdateTaskStatus moves every id to the given status independently.
func (s *TaskService) BatchUpdateTaskStatus(ctx context.Context, callerID string, ids []string, status domain.TaskStatus) (domain.BatchOperationResult, error) {
	if !status.Valid() {
		return domain.BatchOperationResult{}, domain.NewValidationError(fmt.Sprintf("unknown status %q", status))
	}
	return s.runBatch(ctx, ids, func(ctx context.Context, id string) error {
		_, err := s.UpdateTask(ctx, callerID, id, domain.UpdateTaskInput{Status: &status})
		return err
	})
}

// runBatch applies op to each id in input order with per-item isolation:
// one failing id is recorded and never stops the rest. Whole-batch
// preconditions (empty, oversized, duplicate or malformed ids) abort before
// any item runs. Items already committed stay committed; there is no
// cross-item rollback.
func (s *TaskService) runBatch(ctx context.Context, ids []string, op func(ctx context.Context, id string) error) (domain.BatchOperationResult, error) {
	if err := validation.ValidateBatchIDs(ids); err != nil {
		return domain.BatchOperationResult{}, err
	}

	result := domain.BatchOperationResult{
		SuccessfulIDs: make([]string, 0, len(ids)),
		FailedIDs:     make([]string, 0),
		Errors:        make(map[string]string),
	}
	for _, id := range ids {
		if err := op(ctx, id); err != nil {
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, id)
			result.Errors[id] = err.Error()
			continue
		}
		result.Successful++
		result.SuccessfulIDs = append(result.SuccessfulIDs, id)
	}
	return result, nil
}
