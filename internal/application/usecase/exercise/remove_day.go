package exercise

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
)

// RemoveDayInput represents the input for unmarking an exercise day.
type RemoveDayInput struct {
	UserID uuid.UUID
	Date   string // YYYY-MM-DD
}

// RemoveDayUseCase removes an exercise day mark. Removing a day that was
// never logged is a no-op.
type RemoveDayUseCase struct {
	exerciseRepo adapter.ExerciseRepository
}

// NewRemoveDayUseCase creates a new RemoveDayUseCase instance.
func NewRemoveDayUseCase(exerciseRepo adapter.ExerciseRepository) *RemoveDayUseCase {
	return &RemoveDayUseCase{
		exerciseRepo: exerciseRepo,
	}
}

// Execute deletes the exercise day for (user, date).
func (uc *RemoveDayUseCase) Execute(ctx context.Context, input RemoveDayInput) error {
	date, err := parseExerciseDate(input.Date)
	if err != nil {
		return err
	}

	if err := uc.exerciseRepo.DeleteDay(ctx, input.UserID, date); err != nil {
		return fmt.Errorf("failed to remove exercise day: %w", err)
	}

	return nil
}
