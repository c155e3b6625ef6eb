// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// ObservationModel represents the observations table in the database.
// Dates are stored as canonical YYYY-MM-DD strings so a row never shifts
// across a calendar day when read in another timezone.
type ObservationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_observation_day"`
	Date       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_observation_day"`
	Value      float64   `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the ObservationModel.
func (ObservationModel) TableName() string {
	return "observations"
}

// ToEntity converts an ObservationModel to a domain Observation entity.
func (m *ObservationModel) ToEntity() *entity.Observation {
	return &entity.Observation{
		ID:         m.ID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Date:       parseStoredDate(m.Date),
		Value:      m.Value,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ObservationFromEntity creates an ObservationModel from a domain Observation entity.
func ObservationFromEntity(observation *entity.Observation) *ObservationModel {
	return &ObservationModel{
		ID:         observation.ID,
		UserID:     observation.UserID,
		CategoryID: observation.CategoryID,
		Date:       observation.Date.String(),
		Value:      observation.Value,
		CreatedAt:  observation.CreatedAt,
		UpdatedAt:  observation.UpdatedAt,
	}
}

// parseStoredDate parses a date column written by this package. Columns only
// ever hold canonical strings, so a parse failure yields the zero date.
func parseStoredDate(s string) valueobject.LocalDate {
	date, _ := valueobject.ParseLocalDate(s)
	return date
}
