// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/lifetrack/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for a settings update.
type UpdateSettingsRequest struct {
	Theme               *string `json:"theme,omitempty" binding:"omitempty,oneof=dark light"`
	FontSize            *string `json:"font_size,omitempty" binding:"omitempty,oneof=small medium large"`
	ExerciseMonthlyGoal *int    `json:"exercise_monthly_goal,omitempty" binding:"omitempty,min=1"`
}

// SettingsResponse represents the user's settings in API responses.
type SettingsResponse struct {
	Theme               string `json:"theme"`
	FontSize            string `json:"font_size"`
	ExerciseMonthlyGoal int    `json:"exercise_monthly_goal"`
}

// ToSettingsResponse converts a domain Settings entity to a SettingsResponse DTO.
func ToSettingsResponse(settings *entity.Settings) SettingsResponse {
	return SettingsResponse{
		Theme:               settings.Theme,
		FontSize:            settings.FontSize,
		ExerciseMonthlyGoal: settings.ExerciseMonthlyGoal,
	}
}
