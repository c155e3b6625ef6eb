// Package exercise contains exercise tracking use cases.
package exercise

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

type dayKey struct {
	userID uuid.UUID
	date   valueobject.LocalDate
}

// fakeExerciseRepo is an in-memory ExerciseRepository for use case tests.
type fakeExerciseRepo struct {
	days  map[dayKey]*entity.ExerciseDay
	notes map[dayKey]*entity.ExerciseNote
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{
		days:  make(map[dayKey]*entity.ExerciseDay),
		notes: make(map[dayKey]*entity.ExerciseNote),
	}
}

func (r *fakeExerciseRepo) FindDaysByUser(_ context.Context, userID uuid.UUID) ([]*entity.ExerciseDay, error) {
	var out []*entity.ExerciseDay
	for key, day := range r.days {
		if key.userID == userID {
			out = append(out, day)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) UpsertDay(_ context.Context, day *entity.ExerciseDay) error {
	r.days[dayKey{day.UserID, day.Date}] = day
	return nil
}

func (r *fakeExerciseRepo) DeleteDay(_ context.Context, userID uuid.UUID, date valueobject.LocalDate) error {
	delete(r.days, dayKey{userID, date})
	return nil
}

func (r *fakeExerciseRepo) FindNotesByUser(_ context.Context, userID uuid.UUID) ([]*entity.ExerciseNote, error) {
	var out []*entity.ExerciseNote
	for key, note := range r.notes {
		if key.userID == userID {
			out = append(out, note)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) UpsertNote(_ context.Context, note *entity.ExerciseNote) error {
	r.notes[dayKey{note.UserID, note.Date}] = note
	return nil
}

func (r *fakeExerciseRepo) DeleteNote(_ context.Context, userID uuid.UUID, date valueobject.LocalDate) error {
	delete(r.notes, dayKey{userID, date})
	return nil
}

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

func TestLogDayUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeExerciseRepo()
	uc := NewLogDayUseCase(repo)

	t.Run("logs an exercise day", func(t *testing.T) {
		output, err := uc.Execute(ctx, LogDayInput{UserID: userID, Date: "2025-05-10", Completed: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Day.Completed {
			t.Error("expected completed day")
		}
		if len(repo.days) != 1 {
			t.Errorf("expected 1 stored day, got %d", len(repo.days))
		}
	})

	t.Run("logging twice keeps one row", func(t *testing.T) {
		if _, err := uc.Execute(ctx, LogDayInput{UserID: userID, Date: "2025-05-10", Completed: false}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.days) != 1 {
			t.Errorf("expected 1 stored day after relog, got %d", len(repo.days))
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := uc.Execute(ctx, LogDayInput{UserID: userID, Date: "May 10"})
		if !errors.Is(err, domainerror.ErrInvalidExerciseDate) {
			t.Errorf("expected ErrInvalidExerciseDate, got %v", err)
		}
	})
}

func TestSaveNoteUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeExerciseRepo()
	uc := NewSaveNoteUseCase(repo)

	t.Run("saves a trimmed note", func(t *testing.T) {
		output, err := uc.Execute(ctx, SaveNoteInput{UserID: userID, Date: "2025-05-10", Note: "  5k run  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Note == nil || output.Note.Note != "5k run" {
			t.Errorf("expected trimmed note, got %+v", output.Note)
		}
	})

	t.Run("blank note deletes the row", func(t *testing.T) {
		output, err := uc.Execute(ctx, SaveNoteInput{UserID: userID, Date: "2025-05-10", Note: "   "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Note != nil {
			t.Error("expected nil note after blank save")
		}
		if len(repo.notes) != 0 {
			t.Errorf("expected note row removed, got %d rows", len(repo.notes))
		}
	})
}

func TestMonthProgressUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeExerciseRepo()
	settingsRepo := newFakeSettingsRepo()
	logDay := NewLogDayUseCase(repo)

	for _, date := range []string{"2025-05-01", "2025-05-03", "2025-05-07", "2025-04-30"} {
		if _, err := logDay.Execute(ctx, LogDayInput{UserID: userID, Date: date, Completed: true}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	uc := NewMonthProgressUseCase(repo, settingsRepo)

	t.Run("uses default goal when settings absent", func(t *testing.T) {
		output, err := uc.Execute(ctx, MonthProgressInput{UserID: userID, Year: 2025, Month: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.DaysCompleted != 3 {
			t.Errorf("expected 3 completed days, got %d", output.DaysCompleted)
		}
		if output.Goal != entity.DefaultExerciseMonthlyGoal {
			t.Errorf("expected default goal, got %d", output.Goal)
		}
		if output.GoalMet {
			t.Error("expected goal not met")
		}
	})

	t.Run("meets a saved lower goal", func(t *testing.T) {
		settings := entity.DefaultSettings(userID)
		settings.ExerciseMonthlyGoal = 3
		if err := settingsRepo.Save(ctx, settings); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := uc.Execute(ctx, MonthProgressInput{UserID: userID, Year: 2025, Month: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.GoalMet {
			t.Error("expected goal met with goal 3")
		}
	})

	t.Run("rejects month outside 1-12", func(t *testing.T) {
		_, err := uc.Execute(ctx, MonthProgressInput{UserID: userID, Year: 2025, Month: 13})
		if !errors.Is(err, domainerror.ErrInvalidExerciseDate) {
			t.Errorf("expected ErrInvalidExerciseDate, got %v", err)
		}
	})
}
