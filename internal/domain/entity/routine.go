// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// Weekday abbreviations accepted for Routine.Weekdays.
var ValidWeekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// Routine represents a recurring daily activity scheduled at a fixed time
// of day. An empty Weekdays list means the routine applies every day.
type Routine struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Time      string // "HH:MM", 24-hour
	Activity  string
	Weekdays  []string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoutine creates a new active Routine entity.
func NewRoutine(userID uuid.UUID, timeOfDay, activity string, weekdays []string) *Routine {
	now := time.Now().UTC()
	return &Routine{
		ID:        uuid.New(),
		UserID:    userID,
		Time:      timeOfDay,
		Activity:  activity,
		Weekdays:  weekdays,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RoutineCompletion marks a routine as done on one calendar day. Completions
// are toggled: deleting the row un-completes the day.
type RoutineCompletion struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RoutineID uuid.UUID
	Date      valueobject.LocalDate
	CreatedAt time.Time
}

// NewRoutineCompletion creates a new RoutineCompletion entity.
func NewRoutineCompletion(userID, routineID uuid.UUID, date valueobject.LocalDate) *RoutineCompletion {
	return &RoutineCompletion{
		ID:        uuid.New(),
		UserID:    userID,
		RoutineID: routineID,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}
