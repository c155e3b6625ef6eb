// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/lifetrack/backend/internal/domain/entity"
)

// LogExerciseDayRequest represents the request body for logging an exercise day.
type LogExerciseDayRequest struct {
	Date      string `json:"date" binding:"required"`
	Completed bool   `json:"completed"`
}

// SaveExerciseNoteRequest represents the request body for saving a day's note.
type SaveExerciseNoteRequest struct {
	Date string `json:"date" binding:"required"`
	Note string `json:"note"`
}

// ExerciseDayResponse represents a single exercise day in API responses.
type ExerciseDayResponse struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// ExerciseNoteResponse represents a day's note in API responses.
type ExerciseNoteResponse struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

// ExerciseListResponse represents the response for listing exercise days.
type ExerciseListResponse struct {
	Days  []ExerciseDayResponse  `json:"days"`
	Notes []ExerciseNoteResponse `json:"notes"`
}

// MonthProgressResponse reports the month's exercise days against the goal.
type MonthProgressResponse struct {
	DaysCompleted int  `json:"days_completed"`
	Goal          int  `json:"goal"`
	GoalMet       bool `json:"goal_met"`
}

// ToExerciseListResponse converts exercise days and notes to an ExerciseListResponse.
func ToExerciseListResponse(days []*entity.ExerciseDay, notes []*entity.ExerciseNote) ExerciseListResponse {
	dayItems := make([]ExerciseDayResponse, len(days))
	for i, day := range days {
		dayItems[i] = ExerciseDayResponse{
			Date:      day.Date.String(),
			Completed: day.Completed,
		}
	}
	noteItems := make([]ExerciseNoteResponse, len(notes))
	for i, note := range notes {
		noteItems[i] = ExerciseNoteResponse{
			Date: note.Date.String(),
			Note: note.Note,
		}
	}
	return ExerciseListResponse{
		Days:  dayItems,
		Notes: noteItems,
	}
}
