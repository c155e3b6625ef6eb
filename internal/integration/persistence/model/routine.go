// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// RoutineModel represents the routines table in the database.
type RoutineModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Time      string         `gorm:"type:varchar(5);not null"`
	Activity  string         `gorm:"type:varchar(255);not null"`
	Weekdays  pq.StringArray `gorm:"type:text[]"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName returns the table name for the RoutineModel.
func (RoutineModel) TableName() string {
	return "routines"
}

// ToEntity converts a RoutineModel to a domain Routine entity.
func (m *RoutineModel) ToEntity() *entity.Routine {
	return &entity.Routine{
		ID:        m.ID,
		UserID:    m.UserID,
		Time:      m.Time,
		Activity:  m.Activity,
		Weekdays:  []string(m.Weekdays),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// RoutineFromEntity creates a RoutineModel from a domain Routine entity.
func RoutineFromEntity(routine *entity.Routine) *RoutineModel {
	return &RoutineModel{
		ID:        routine.ID,
		UserID:    routine.UserID,
		Time:      routine.Time,
		Activity:  routine.Activity,
		Weekdays:  pq.StringArray(routine.Weekdays),
		IsActive:  routine.IsActive,
		CreatedAt: routine.CreatedAt,
		UpdatedAt: routine.UpdatedAt,
	}
}

// RoutineCompletionModel represents the routine_completions table.
type RoutineCompletionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RoutineID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_routine_completion_day"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_routine_completion_day"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the RoutineCompletionModel.
func (RoutineCompletionModel) TableName() string {
	return "routine_completions"
}

// ToEntity converts a RoutineCompletionModel to a domain RoutineCompletion entity.
func (m *RoutineCompletionModel) ToEntity() *entity.RoutineCompletion {
	return &entity.RoutineCompletion{
		ID:        m.ID,
		UserID:    m.UserID,
		RoutineID: m.RoutineID,
		Date:      parseStoredDate(m.Date),
		CreatedAt: m.CreatedAt,
	}
}

// RoutineCompletionFromEntity creates a RoutineCompletionModel from a domain entity.
func RoutineCompletionFromEntity(completion *entity.RoutineCompletion) *RoutineCompletionModel {
	return &RoutineCompletionModel{
		ID:        completion.ID,
		UserID:    completion.UserID,
		RoutineID: completion.RoutineID,
		Date:      completion.Date.String(),
		CreatedAt: completion.CreatedAt,
	}
}
