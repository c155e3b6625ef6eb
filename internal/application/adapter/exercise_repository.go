// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// ExerciseRepository defines the interface for exercise persistence operations.
// UpsertDay is idempotent on (user, date).
type ExerciseRepository interface {
	// FindDaysByUser retrieves all exercise days for a user, newest first.
	FindDaysByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExerciseDay, error)

	// UpsertDay inserts or replaces the exercise day for (user, date).
	UpsertDay(ctx context.Context, day *entity.ExerciseDay) error

	// DeleteDay removes the exercise day for (user, date), if any.
	DeleteDay(ctx context.Context, userID uuid.UUID, date valueobject.LocalDate) error

	// FindNotesByUser retrieves all exercise notes for a user.
	FindNotesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExerciseNote, error)

	// UpsertNote inserts or replaces the note for (user, date).
	UpsertNote(ctx context.Context, note *entity.ExerciseNote) error

	// DeleteNote removes the note for (user, date), if any.
	DeleteNote(ctx context.Context, userID uuid.UUID, date valueobject.LocalDate) error
}
