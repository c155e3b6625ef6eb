package settings

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

var (
	validThemes    = []string{"dark", "light"}
	validFontSizes = []string{"small", "medium", "large"}
)

// UpdateSettingsInput represents a partial settings update. Nil pointers
// leave the corresponding field unchanged.
type UpdateSettingsInput struct {
	UserID              uuid.UUID
	Theme               *string
	FontSize            *string
	ExerciseMonthlyGoal *int
}

// UpdateSettingsOutput represents the output of a settings update.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase handles settings update logic.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute validates and saves the requested settings changes.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings == nil {
		settings = entity.DefaultSettings(input.UserID)
	}

	if input.Theme != nil {
		if !slices.Contains(validThemes, *input.Theme) {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidTheme,
				"theme must be dark or light",
				domainerror.ErrInvalidTheme,
			)
		}
		settings.Theme = *input.Theme
	}
	if input.FontSize != nil {
		if !slices.Contains(validFontSizes, *input.FontSize) {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidFontSize,
				"font size must be small, medium or large",
				domainerror.ErrInvalidFontSize,
			)
		}
		settings.FontSize = *input.FontSize
	}
	if input.ExerciseMonthlyGoal != nil {
		if *input.ExerciseMonthlyGoal <= 0 {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidExerciseGoal,
				"exercise monthly goal must be positive",
				domainerror.ErrInvalidExerciseGoal,
			)
		}
		settings.ExerciseMonthlyGoal = *input.ExerciseMonthlyGoal
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{
		Settings: settings,
	}, nil
}
