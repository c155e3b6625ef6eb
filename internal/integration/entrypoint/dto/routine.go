// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateRoutineRequest represents the request body for routine creation.
type CreateRoutineRequest struct {
	Time     string   `json:"time" binding:"required"`
	Activity string   `json:"activity" binding:"required,min=1,max=200"`
	Weekdays []string `json:"weekdays,omitempty"`
}

// UpdateRoutineRequest represents the request body for routine update.
type UpdateRoutineRequest struct {
	Time     *string   `json:"time,omitempty"`
	Activity *string   `json:"activity,omitempty" binding:"omitempty,min=1,max=200"`
	Weekdays *[]string `json:"weekdays,omitempty"`
	IsActive *bool     `json:"is_active,omitempty"`
}

// ToggleCompletionRequest represents the request body for toggling a routine day.
type ToggleCompletionRequest struct {
	Date string `json:"date" binding:"required"`
}

// RoutineResponse represents a single routine in API responses.
type RoutineResponse struct {
	ID        string    `json:"id"`
	Time      string    `json:"time"`
	Activity  string    `json:"activity"`
	Weekdays  []string  `json:"weekdays"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoutineListResponse represents the response for listing routines.
type RoutineListResponse struct {
	Routines []RoutineResponse `json:"routines"`
}

// CompletionResponse represents a routine completion mark in API responses.
type CompletionResponse struct {
	RoutineID string `json:"routine_id"`
	Date      string `json:"date"`
}

// CompletionListResponse represents the response for a completion range query.
type CompletionListResponse struct {
	Completions []CompletionResponse `json:"completions"`
}

// ToggleCompletionResponse reports the day's state after a toggle.
type ToggleCompletionResponse struct {
	Completed bool `json:"completed"`
}

// ToRoutineResponse converts a domain Routine entity to a RoutineResponse DTO.
func ToRoutineResponse(routine *entity.Routine) RoutineResponse {
	weekdays := routine.Weekdays
	if weekdays == nil {
		weekdays = []string{}
	}
	return RoutineResponse{
		ID:        routine.ID.String(),
		Time:      routine.Time,
		Activity:  routine.Activity,
		Weekdays:  weekdays,
		IsActive:  routine.IsActive,
		CreatedAt: routine.CreatedAt,
		UpdatedAt: routine.UpdatedAt,
	}
}

// ToRoutineListResponse converts a list of Routine entities to a RoutineListResponse.
func ToRoutineListResponse(routines []*entity.Routine) RoutineListResponse {
	items := make([]RoutineResponse, len(routines))
	for i, routine := range routines {
		items[i] = ToRoutineResponse(routine)
	}
	return RoutineListResponse{
		Routines: items,
	}
}

// ToCompletionListResponse converts completions to a CompletionListResponse.
func ToCompletionListResponse(completions []*entity.RoutineCompletion) CompletionListResponse {
	items := make([]CompletionResponse, len(completions))
	for i, completion := range completions {
		items[i] = CompletionResponse{
			RoutineID: completion.RoutineID.String(),
			Date:      completion.Date.String(),
		}
	}
	return CompletionListResponse{
		Completions: items,
	}
}
