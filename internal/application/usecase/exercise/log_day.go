// Package exercise contains exercise tracking use cases.
package exercise

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// LogDayInput represents the input for marking an exercise day.
type LogDayInput struct {
	UserID    uuid.UUID
	Date      string // YYYY-MM-DD
	Completed bool
}

// LogDayOutput represents the output of logging an exercise day.
type LogDayOutput struct {
	Day *entity.ExerciseDay
}

// LogDayUseCase records one calendar day as an exercise day. Logging the
// same day twice replaces the earlier row.
type LogDayUseCase struct {
	exerciseRepo adapter.ExerciseRepository
}

// NewLogDayUseCase creates a new LogDayUseCase instance.
func NewLogDayUseCase(exerciseRepo adapter.ExerciseRepository) *LogDayUseCase {
	return &LogDayUseCase{
		exerciseRepo: exerciseRepo,
	}
}

// Execute upserts the exercise day for (user, date).
func (uc *LogDayUseCase) Execute(ctx context.Context, input LogDayInput) (*LogDayOutput, error) {
	date, err := parseExerciseDate(input.Date)
	if err != nil {
		return nil, err
	}

	day := entity.NewExerciseDay(input.UserID, date, input.Completed)

	if err := uc.exerciseRepo.UpsertDay(ctx, day); err != nil {
		return nil, fmt.Errorf("failed to log exercise day: %w", err)
	}

	return &LogDayOutput{
		Day: day,
	}, nil
}

func parseExerciseDate(raw string) (valueobject.LocalDate, error) {
	date, err := valueobject.ParseLocalDate(raw)
	if err != nil {
		return valueobject.LocalDate{}, domainerror.NewExerciseError(
			domainerror.ErrCodeInvalidExerciseDate,
			"date must be a valid YYYY-MM-DD day",
			domainerror.ErrInvalidExerciseDate,
		)
	}
	return date, nil
}
