package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// UpdateTaskInput represents the input for a partial task update. Nil
// pointers leave the corresponding field unchanged.
type UpdateTaskInput struct {
	UserID      uuid.UUID
	TaskID      uuid.UUID
	Date        *string
	Time        *string
	Title       *string
	Description *string
	Completed   *bool
}

// UpdateTaskOutput represents the output of a task update.
type UpdateTaskOutput struct {
	Task *entity.Task
}

// UpdateTaskUseCase handles task update logic.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute applies the requested changes to the user's task.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	task, err := findUserTask(ctx, uc.taskRepo, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		date, err := valueobject.ParseLocalDate(*input.Date)
		if err != nil {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskDate,
				"date must be a valid YYYY-MM-DD day",
				domainerror.ErrInvalidTaskDate,
			)
		}
		task.Date = date
	}
	if input.Time != nil {
		if *input.Time != "" && !timeOfDayRegex.MatchString(*input.Time) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskTime,
				"time must be a 24-hour HH:MM value",
				domainerror.ErrInvalidTaskTime,
			)
		}
		task.Time = *input.Time
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeEmptyTaskTitle,
				"title must not be empty",
				domainerror.ErrEmptyTaskTitle,
			)
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &UpdateTaskOutput{
		Task: task,
	}, nil
}

// findUserTask loads a task and checks it belongs to the user. Tasks owned
// by someone else surface as not found.
func findUserTask(ctx context.Context, repo adapter.TaskRepository, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task == nil || task.UserID != userID {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}
	return task, nil
}
