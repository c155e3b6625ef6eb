// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// ObservationRepository defines the interface for observation persistence
// operations. Upsert must be idempotent on (user, category, date): calling it
// twice with the same key leaves exactly one row.
type ObservationRepository interface {
	// FindByCategory retrieves all observations for a category.
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Observation, error)

	// Upsert inserts or replaces the observation for (user, category, date).
	Upsert(ctx context.Context, observation *entity.Observation) error

	// Delete removes the observation for (category, date), if any.
	Delete(ctx context.Context, categoryID uuid.UUID, date valueobject.LocalDate) error

	// DeleteByCategory removes all observations for a category.
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error
}
