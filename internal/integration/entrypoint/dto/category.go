// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=50"`
	Kind      string  `json:"kind" binding:"required,oneof=count duration time"`
	Unit      string  `json:"unit,omitempty"`
	Color     string  `json:"color,omitempty"`
	GoalType  string  `json:"goal_type" binding:"required,oneof=none limit abstinence"`
	GoalValue float64 `json:"goal_value,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name      *string  `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Kind      *string  `json:"kind,omitempty" binding:"omitempty,oneof=count duration time"`
	Unit      *string  `json:"unit,omitempty"`
	Color     *string  `json:"color,omitempty"`
	GoalType  *string  `json:"goal_type,omitempty" binding:"omitempty,oneof=none limit abstinence"`
	GoalValue *float64 `json:"goal_value,omitempty"`
}

// CategoryResponse represents a single tracked category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Unit      string    `json:"unit"`
	Color     string    `json:"color"`
	GoalType  string    `json:"goal_type"`
	GoalValue float64   `json:"goal_value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Kind:      string(cat.Kind),
		Unit:      cat.Unit,
		Color:     cat.Color,
		GoalType:  string(cat.GoalType),
		GoalValue: cat.GoalValue,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of Category entities to a CategoryListResponse.
func ToCategoryListResponse(cats []*entity.Category) CategoryListResponse {
	categories := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		categories[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
