// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// Observation is a single dated value recorded for a category. At most one
// observation exists per (user, category, date); writes go through an upsert
// keyed on that triple.
type Observation struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Date       valueobject.LocalDate
	Value      float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewObservation creates a new Observation entity.
func NewObservation(userID, categoryID uuid.UUID, date valueobject.LocalDate, value float64) *Observation {
	now := time.Now().UTC()
	return &Observation{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Date:       date,
		Value:      value,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
