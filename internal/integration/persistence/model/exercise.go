// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// ExerciseDayModel represents the exercise_days table in the database.
type ExerciseDayModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exercise_day"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_exercise_day"`
	Completed bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExerciseDayModel.
func (ExerciseDayModel) TableName() string {
	return "exercise_days"
}

// ToEntity converts an ExerciseDayModel to a domain ExerciseDay entity.
func (m *ExerciseDayModel) ToEntity() *entity.ExerciseDay {
	return &entity.ExerciseDay{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      parseStoredDate(m.Date),
		Completed: m.Completed,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ExerciseDayFromEntity creates an ExerciseDayModel from a domain entity.
func ExerciseDayFromEntity(day *entity.ExerciseDay) *ExerciseDayModel {
	return &ExerciseDayModel{
		ID:        day.ID,
		UserID:    day.UserID,
		Date:      day.Date.String(),
		Completed: day.Completed,
		CreatedAt: day.CreatedAt,
		UpdatedAt: day.UpdatedAt,
	}
}

// ExerciseNoteModel represents the exercise_notes table in the database.
type ExerciseNoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exercise_note"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_exercise_note"`
	Note      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExerciseNoteModel.
func (ExerciseNoteModel) TableName() string {
	return "exercise_notes"
}

// ToEntity converts an ExerciseNoteModel to a domain ExerciseNote entity.
func (m *ExerciseNoteModel) ToEntity() *entity.ExerciseNote {
	return &entity.ExerciseNote{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      parseStoredDate(m.Date),
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ExerciseNoteFromEntity creates an ExerciseNoteModel from a domain entity.
func ExerciseNoteFromEntity(note *entity.ExerciseNote) *ExerciseNoteModel {
	return &ExerciseNoteModel{
		ID:        note.ID,
		UserID:    note.UserID,
		Date:      note.Date.String(),
		Note:      note.Note,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
