// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// TaskRepository defines the interface for task persistence operations.
type TaskRepository interface {
	// Create creates a new task in the database.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByUserAndRange retrieves a user's tasks with dates in [start, end],
	// ordered by date then time of day.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end valueobject.LocalDate) ([]*entity.Task, error)

	// Update updates an existing task in the database.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
