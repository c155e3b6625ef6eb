// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// UpsertObservationRequest represents the request body for recording a value.
type UpsertObservationRequest struct {
	Date  string  `json:"date" binding:"required"`
	Value float64 `json:"value"`
}

// ObservationResponse represents a single recorded value in API responses.
type ObservationResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Date       string    `json:"date"`
	Value      float64   `json:"value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ObservationListResponse represents the response for listing observations.
type ObservationListResponse struct {
	Observations []ObservationResponse `json:"observations"`
}

// ToObservationResponse converts a domain Observation entity to an ObservationResponse DTO.
func ToObservationResponse(obs *entity.Observation) ObservationResponse {
	return ObservationResponse{
		ID:         obs.ID.String(),
		CategoryID: obs.CategoryID.String(),
		Date:       obs.Date.String(),
		Value:      obs.Value,
		CreatedAt:  obs.CreatedAt,
		UpdatedAt:  obs.UpdatedAt,
	}
}

// ToObservationListResponse converts a list of Observation entities to an ObservationListResponse.
func ToObservationListResponse(obs []*entity.Observation) ObservationListResponse {
	observations := make([]ObservationResponse, len(obs))
	for i, o := range obs {
		observations[i] = ToObservationResponse(o)
	}
	return ObservationListResponse{
		Observations: observations,
	}
}
