// Package settings contains user preference use cases.
package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// fakeSettingsRepo is an in-memory SettingsRepository for use case tests.
type fakeSettingsRepo struct {
	settings map[uuid.UUID]*entity.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uuid.UUID]*entity.Settings)}
}

func (r *fakeSettingsRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Settings, error) {
	return r.settings[userID], nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, settings *entity.Settings) error {
	r.settings[settings.UserID] = settings
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestGetSettingsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeSettingsRepo()
	uc := NewGetSettingsUseCase(repo)

	t.Run("returns defaults when nothing saved", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetSettingsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Settings.Theme != entity.DefaultTheme {
			t.Errorf("expected default theme, got %s", output.Settings.Theme)
		}
		if output.Settings.ExerciseMonthlyGoal != entity.DefaultExerciseMonthlyGoal {
			t.Errorf("expected default goal, got %d", output.Settings.ExerciseMonthlyGoal)
		}
	})

	t.Run("returns the saved row", func(t *testing.T) {
		saved := entity.DefaultSettings(userID)
		saved.Theme = "light"
		if err := repo.Save(ctx, saved); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := uc.Execute(ctx, GetSettingsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Settings.Theme != "light" {
			t.Errorf("expected light theme, got %s", output.Settings.Theme)
		}
	})
}

func TestUpdateSettingsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("updates only supplied fields", func(t *testing.T) {
		repo := newFakeSettingsRepo()
		uc := NewUpdateSettingsUseCase(repo)

		output, err := uc.Execute(ctx, UpdateSettingsInput{
			UserID:   userID,
			FontSize: strPtr("large"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Settings.FontSize != "large" {
			t.Errorf("expected large font, got %s", output.Settings.FontSize)
		}
		if output.Settings.Theme != entity.DefaultTheme {
			t.Errorf("expected theme untouched, got %s", output.Settings.Theme)
		}
	})

	t.Run("rejects unknown theme", func(t *testing.T) {
		uc := NewUpdateSettingsUseCase(newFakeSettingsRepo())

		_, err := uc.Execute(ctx, UpdateSettingsInput{UserID: userID, Theme: strPtr("sepia")})
		if !errors.Is(err, domainerror.ErrInvalidTheme) {
			t.Errorf("expected ErrInvalidTheme, got %v", err)
		}
	})

	t.Run("rejects unknown font size", func(t *testing.T) {
		uc := NewUpdateSettingsUseCase(newFakeSettingsRepo())

		_, err := uc.Execute(ctx, UpdateSettingsInput{UserID: userID, FontSize: strPtr("huge")})
		if !errors.Is(err, domainerror.ErrInvalidFontSize) {
			t.Errorf("expected ErrInvalidFontSize, got %v", err)
		}
	})

	t.Run("rejects non-positive exercise goal", func(t *testing.T) {
		uc := NewUpdateSettingsUseCase(newFakeSettingsRepo())

		_, err := uc.Execute(ctx, UpdateSettingsInput{UserID: userID, ExerciseMonthlyGoal: intPtr(0)})
		if !errors.Is(err, domainerror.ErrInvalidExerciseGoal) {
			t.Errorf("expected ErrInvalidExerciseGoal, got %v", err)
		}
	})
}
