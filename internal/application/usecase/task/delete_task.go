package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
}

// DeleteTaskUseCase handles task deletion logic.
type DeleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(taskRepo adapter.TaskRepository) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute deletes the user's task.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) error {
	if _, err := findUserTask(ctx, uc.taskRepo, input.UserID, input.TaskID); err != nil {
		return err
	}

	if err := uc.taskRepo.Delete(ctx, input.TaskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
