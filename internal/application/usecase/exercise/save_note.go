package exercise

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// SaveNoteInput represents the input for saving an exercise note.
type SaveNoteInput struct {
	UserID uuid.UUID
	Date   string // YYYY-MM-DD
	Note   string
}

// SaveNoteOutput represents the output of saving a note. Note is nil when
// the save deleted the row.
type SaveNoteOutput struct {
	Note *entity.ExerciseNote
}

// SaveNoteUseCase attaches a free-text note to an exercise day. Saving a
// blank note removes the existing one.
type SaveNoteUseCase struct {
	exerciseRepo adapter.ExerciseRepository
}

// NewSaveNoteUseCase creates a new SaveNoteUseCase instance.
func NewSaveNoteUseCase(exerciseRepo adapter.ExerciseRepository) *SaveNoteUseCase {
	return &SaveNoteUseCase{
		exerciseRepo: exerciseRepo,
	}
}

// Execute upserts or deletes the note for (user, date).
func (uc *SaveNoteUseCase) Execute(ctx context.Context, input SaveNoteInput) (*SaveNoteOutput, error) {
	date, err := parseExerciseDate(input.Date)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Note)
	if text == "" {
		if err := uc.exerciseRepo.DeleteNote(ctx, input.UserID, date); err != nil {
			return nil, fmt.Errorf("failed to delete exercise note: %w", err)
		}
		return &SaveNoteOutput{}, nil
	}

	note := entity.NewExerciseNote(input.UserID, date, text)
	if err := uc.exerciseRepo.UpsertNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to save exercise note: %w", err)
	}

	return &SaveNoteOutput{
		Note: note,
	}, nil
}
