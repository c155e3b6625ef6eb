package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// ToggleTaskInput represents the input for toggling a task's completion.
type ToggleTaskInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
}

// ToggleTaskOutput represents the output of a toggle.
type ToggleTaskOutput struct {
	Task *entity.Task
}

// ToggleTaskUseCase flips a task between completed and pending.
type ToggleTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewToggleTaskUseCase creates a new ToggleTaskUseCase instance.
func NewToggleTaskUseCase(taskRepo adapter.TaskRepository) *ToggleTaskUseCase {
	return &ToggleTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute toggles the completion flag of the user's task.
func (uc *ToggleTaskUseCase) Execute(ctx context.Context, input ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := findUserTask(ctx, uc.taskRepo, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &ToggleTaskOutput{
		Task: task,
	}, nil
}
