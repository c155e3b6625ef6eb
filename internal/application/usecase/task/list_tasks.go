package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// ListTasksInput represents the input for listing tasks in a date range.
type ListTasksInput struct {
	UserID    uuid.UUID
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// ListTasksOutput represents the output of a task listing.
type ListTasksOutput struct {
	Tasks []*entity.Task
}

// ListTasksUseCase handles task listing logic.
type ListTasksUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
	}
}

// Execute lists the user's tasks whose dates fall within the given range.
func (uc *ListTasksUseCase) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	start, err := valueobject.ParseLocalDate(input.StartDate)
	if err != nil {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskDate,
			"start date must be a valid YYYY-MM-DD day",
			domainerror.ErrInvalidTaskDate,
		)
	}
	end, err := valueobject.ParseLocalDate(input.EndDate)
	if err != nil {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskDate,
			"end date must be a valid YYYY-MM-DD day",
			domainerror.ErrInvalidTaskDate,
		)
	}
	if end.Before(start) {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskDate,
			"end date must not precede start date",
			domainerror.ErrInvalidTaskDate,
		)
	}

	tasks, err := uc.taskRepo.FindByUserAndRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &ListTasksOutput{
		Tasks: tasks,
	}, nil
}
