// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// RoutineRepository defines the interface for routine persistence operations.
type RoutineRepository interface {
	// Create creates a new routine in the database.
	Create(ctx context.Context, routine *entity.Routine) error

	// FindByID retrieves a routine by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Routine, error)

	// FindActiveByUser retrieves a user's active routines ordered by time of day.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Routine, error)

	// Update updates an existing routine in the database.
	Update(ctx context.Context, routine *entity.Routine) error

	// Delete removes a routine and its completions from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindCompletion retrieves the completion for (routine, date), nil when absent.
	FindCompletion(ctx context.Context, routineID uuid.UUID, date valueobject.LocalDate) (*entity.RoutineCompletion, error)

	// CreateCompletion marks a routine completed on a date.
	CreateCompletion(ctx context.Context, completion *entity.RoutineCompletion) error

	// DeleteCompletion removes a completion row.
	DeleteCompletion(ctx context.Context, id uuid.UUID) error

	// FindCompletionsInRange retrieves a user's completions with dates in [start, end].
	FindCompletionsInRange(ctx context.Context, userID uuid.UUID, start, end valueobject.LocalDate) ([]*entity.RoutineCompletion, error)
}
