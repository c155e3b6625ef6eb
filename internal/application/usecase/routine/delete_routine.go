// Package routine contains daily-routine use cases.
package routine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
)

// DeleteRoutineInput represents the input for routine deletion.
type DeleteRoutineInput struct {
	UserID    uuid.UUID
	RoutineID uuid.UUID
}

// DeleteRoutineUseCase handles routine deletion logic.
type DeleteRoutineUseCase struct {
	routineRepo adapter.RoutineRepository
}

// NewDeleteRoutineUseCase creates a new DeleteRoutineUseCase instance.
func NewDeleteRoutineUseCase(routineRepo adapter.RoutineRepository) *DeleteRoutineUseCase {
	return &DeleteRoutineUseCase{
		routineRepo: routineRepo,
	}
}

// Execute deletes the routine and its completion history.
func (uc *DeleteRoutineUseCase) Execute(ctx context.Context, input DeleteRoutineInput) error {
	if _, err := findUserRoutine(ctx, uc.routineRepo, input.RoutineID, input.UserID); err != nil {
		return err
	}

	if err := uc.routineRepo.Delete(ctx, input.RoutineID); err != nil {
		return fmt.Errorf("failed to delete routine: %w", err)
	}

	return nil
}
