// Package task contains scheduled-task use cases.
package task

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// timeOfDayRegex matches 24-hour HH:MM values.
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	UserID      uuid.UUID
	Date        string // YYYY-MM-DD
	Time        string // optional HH:MM
	Title       string
	Description string
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	date, err := valueobject.ParseLocalDate(input.Date)
	if err != nil {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskDate,
			"date must be a valid YYYY-MM-DD day",
			domainerror.ErrInvalidTaskDate,
		)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeEmptyTaskTitle,
			"title must not be empty",
			domainerror.ErrEmptyTaskTitle,
		)
	}

	if input.Time != "" && !timeOfDayRegex.MatchString(input.Time) {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskTime,
			"time must be a 24-hour HH:MM value",
			domainerror.ErrInvalidTaskTime,
		)
	}

	task := entity.NewTask(input.UserID, date, input.Time, title, input.Description)

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &CreateTaskOutput{
		Task: task,
	}, nil
}
