// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// DefaultCategoryColor is the default color for tracked categories.
const DefaultCategoryColor = "#6366F1"

// Category represents a user-defined metric being tracked (e.g. "screen
// time", "smoking", "reading"). Its value kind decides how observation
// values are interpreted and formatted; its goal policy decides compliance
// and heat-map scoring.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Kind      valueobject.ValueKind
	Unit      string
	Color     string
	GoalType  valueobject.GoalType
	GoalValue float64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
// Defaulting logic for the color is applied in the Application layer
// (UseCase) before calling this constructor.
func NewCategory(
	userID uuid.UUID,
	name string,
	kind valueobject.ValueKind,
	unit, color string,
	goalType valueobject.GoalType,
	goalValue float64,
) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Kind:      kind,
		Unit:      unit,
		Color:     color,
		GoalType:  goalType,
		GoalValue: goalValue,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Policy builds the category's goal policy from its stored fields.
func (c *Category) Policy() (valueobject.GoalPolicy, error) {
	return valueobject.NewGoalPolicy(c.GoalType, c.GoalValue)
}
