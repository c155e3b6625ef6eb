package exercise

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// ListDaysInput represents the input for listing a user's exercise data.
type ListDaysInput struct {
	UserID uuid.UUID
}

// ListDaysOutput carries the user's exercise days together with their notes.
type ListDaysOutput struct {
	Days  []*entity.ExerciseDay
	Notes []*entity.ExerciseNote
}

// ListDaysUseCase handles exercise day listing logic.
type ListDaysUseCase struct {
	exerciseRepo adapter.ExerciseRepository
}

// NewListDaysUseCase creates a new ListDaysUseCase instance.
func NewListDaysUseCase(exerciseRepo adapter.ExerciseRepository) *ListDaysUseCase {
	return &ListDaysUseCase{
		exerciseRepo: exerciseRepo,
	}
}

// Execute lists all exercise days and notes for the user.
func (uc *ListDaysUseCase) Execute(ctx context.Context, input ListDaysInput) (*ListDaysOutput, error) {
	days, err := uc.exerciseRepo.FindDaysByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise days: %w", err)
	}

	notes, err := uc.exerciseRepo.FindNotesByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise notes: %w", err)
	}

	return &ListDaysOutput{
		Days:  days,
		Notes: notes,
	}, nil
}
