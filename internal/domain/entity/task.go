// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// Task represents a one-off item scheduled for a specific day, optionally
// at a specific time of day.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        valueobject.LocalDate
	Time        string // "HH:MM", empty when unscheduled within the day
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a new, not yet completed Task entity.
func NewTask(userID uuid.UUID, date valueobject.LocalDate, timeOfDay, title, description string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Time:        timeOfDay,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
