package exercise

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// MonthProgressInput represents the input for the monthly goal progress.
type MonthProgressInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 1-12
}

// MonthProgressOutput reports exercise days in the month against the goal.
type MonthProgressOutput struct {
	DaysCompleted int
	Goal          int
	GoalMet       bool
}

// MonthProgressUseCase counts completed exercise days in a month and
// compares them against the user's monthly goal from settings.
type MonthProgressUseCase struct {
	exerciseRepo adapter.ExerciseRepository
	settingsRepo adapter.SettingsRepository
}

// NewMonthProgressUseCase creates a new MonthProgressUseCase instance.
func NewMonthProgressUseCase(
	exerciseRepo adapter.ExerciseRepository,
	settingsRepo adapter.SettingsRepository,
) *MonthProgressUseCase {
	return &MonthProgressUseCase{
		exerciseRepo: exerciseRepo,
		settingsRepo: settingsRepo,
	}
}

// Execute computes the month's progress for the user.
func (uc *MonthProgressUseCase) Execute(ctx context.Context, input MonthProgressInput) (*MonthProgressOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewExerciseError(
			domainerror.ErrCodeInvalidExerciseDate,
			"month must be between 1 and 12",
			domainerror.ErrInvalidExerciseDate,
		)
	}

	days, err := uc.exerciseRepo.FindDaysByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise days: %w", err)
	}

	completed := 0
	for _, day := range days {
		if day.Completed && day.Date.InMonth(input.Year, time.Month(input.Month)) {
			completed++
		}
	}

	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	goal := entity.DefaultExerciseMonthlyGoal
	if settings != nil {
		goal = settings.ExerciseMonthlyGoal
	}

	return &MonthProgressOutput{
		DaysCompleted: completed,
		Goal:          goal,
		GoalMet:       goal > 0 && completed >= goal,
	}, nil
}
