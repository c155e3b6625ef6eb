// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default values applied when a user has no settings row yet.
const (
	DefaultTheme               = "dark"
	DefaultFontSize            = "medium"
	DefaultExerciseMonthlyGoal = 12
)

// Settings holds per-user presentation preferences and the exercise monthly
// goal. It is loaded explicitly and passed down through composition rather
// than living in ambient global state.
type Settings struct {
	UserID              uuid.UUID
	Theme               string
	FontSize            string
	ExerciseMonthlyGoal int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultSettings returns the settings used before a user saves their own.
func DefaultSettings(userID uuid.UUID) *Settings {
	now := time.Now().UTC()
	return &Settings{
		UserID:              userID,
		Theme:               DefaultTheme,
		FontSize:            DefaultFontSize,
		ExerciseMonthlyGoal: DefaultExerciseMonthlyGoal,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
