// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByUserAndMonth retrieves a user's transactions dated in the given month.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateRecurring creates a new recurring transaction template.
	CreateRecurring(ctx context.Context, recurring *entity.RecurringTransaction) error

	// FindRecurringByUser retrieves all recurring templates for a user.
	FindRecurringByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error)

	// DeleteRecurring removes a recurring transaction template.
	DeleteRecurring(ctx context.Context, id uuid.UUID) error
}
