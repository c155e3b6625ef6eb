// Package routine contains daily-routine use cases.
package routine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// ToggleCompletionInput represents the input for toggling a completion.
type ToggleCompletionInput struct {
	UserID    uuid.UUID
	RoutineID uuid.UUID
	Date      string // YYYY-MM-DD
}

// ToggleCompletionOutput represents the output of toggling a completion.
type ToggleCompletionOutput struct {
	Completed bool
}

// ToggleCompletionUseCase flips a routine's done state for one day: a toggle
// on an uncompleted day creates the completion row, a toggle on a completed
// day removes it.
type ToggleCompletionUseCase struct {
	routineRepo adapter.RoutineRepository
}

// NewToggleCompletionUseCase creates a new ToggleCompletionUseCase instance.
func NewToggleCompletionUseCase(routineRepo adapter.RoutineRepository) *ToggleCompletionUseCase {
	return &ToggleCompletionUseCase{
		routineRepo: routineRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleCompletionUseCase) Execute(ctx context.Context, input ToggleCompletionInput) (*ToggleCompletionOutput, error) {
	date, err := valueobject.ParseLocalDate(input.Date)
	if err != nil {
		return nil, domainerror.NewRoutineError(
			domainerror.ErrCodeInvalidCompletionDate,
			"date must be a valid YYYY-MM-DD day",
			domainerror.ErrInvalidCompletionDate,
		)
	}

	if _, err := findUserRoutine(ctx, uc.routineRepo, input.RoutineID, input.UserID); err != nil {
		return nil, err
	}

	existing, err := uc.routineRepo.FindCompletion(ctx, input.RoutineID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to look up completion: %w", err)
	}

	if existing != nil {
		if err := uc.routineRepo.DeleteCompletion(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to remove completion: %w", err)
		}
		return &ToggleCompletionOutput{Completed: false}, nil
	}

	completion := entity.NewRoutineCompletion(input.UserID, input.RoutineID, date)
	if err := uc.routineRepo.CreateCompletion(ctx, completion); err != nil {
		return nil, fmt.Errorf("failed to create completion: %w", err)
	}
	return &ToggleCompletionOutput{Completed: true}, nil
}
