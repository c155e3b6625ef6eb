// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// SettingsModel represents the user_settings table in the database.
// One row per user, keyed by the user ID.
type SettingsModel struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Theme               string    `gorm:"type:varchar(10);not null;default:'dark'"`
	FontSize            string    `gorm:"type:varchar(10);not null;default:'medium'"`
	ExerciseMonthlyGoal int       `gorm:"not null;default:12"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		UserID:              m.UserID,
		Theme:               m.Theme,
		FontSize:            m.FontSize,
		ExerciseMonthlyGoal: m.ExerciseMonthlyGoal,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	return &SettingsModel{
		UserID:              settings.UserID,
		Theme:               settings.Theme,
		FontSize:            settings.FontSize,
		ExerciseMonthlyGoal: settings.ExerciseMonthlyGoal,
		CreatedAt:           settings.CreatedAt,
		UpdatedAt:           settings.UpdatedAt,
	}
}
