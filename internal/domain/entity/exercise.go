// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// ExerciseDay marks one calendar day as an exercise day. One row per
// (user, date); logging the same day twice upserts.
type ExerciseDay struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      valueobject.LocalDate
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExerciseDay creates a new ExerciseDay entity.
func NewExerciseDay(userID uuid.UUID, date valueobject.LocalDate, completed bool) *ExerciseDay {
	now := time.Now().UTC()
	return &ExerciseDay{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ExerciseNote is a free-text note attached to one exercise day. Saving an
// empty note deletes the row.
type ExerciseNote struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      valueobject.LocalDate
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExerciseNote creates a new ExerciseNote entity.
func NewExerciseNote(userID uuid.UUID, date valueobject.LocalDate, note string) *ExerciseNote {
	now := time.Now().UTC()
	return &ExerciseNote{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
