// Package routine contains daily-routine use cases.
package routine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// ListRoutinesInput represents the input for listing routines.
type ListRoutinesInput struct {
	UserID uuid.UUID
}

// ListRoutinesOutput represents the output of listing routines.
type ListRoutinesOutput struct {
	Routines []*entity.Routine
}

// ListRoutinesUseCase handles routine listing logic.
type ListRoutinesUseCase struct {
	routineRepo adapter.RoutineRepository
}

// NewListRoutinesUseCase creates a new ListRoutinesUseCase instance.
func NewListRoutinesUseCase(routineRepo adapter.RoutineRepository) *ListRoutinesUseCase {
	return &ListRoutinesUseCase{
		routineRepo: routineRepo,
	}
}

// Execute retrieves the user's active routines ordered by time of day.
func (uc *ListRoutinesUseCase) Execute(ctx context.Context, input ListRoutinesInput) (*ListRoutinesOutput, error) {
	routines, err := uc.routineRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}

	return &ListRoutinesOutput{
		Routines: routines,
	}, nil
}
