package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// ListRecurringInput represents the input for listing recurring templates.
type ListRecurringInput struct {
	UserID uuid.UUID
}

// ListRecurringOutput represents the output of a recurring template listing.
type ListRecurringOutput struct {
	Recurring []*entity.RecurringTransaction
}

// ListRecurringUseCase handles recurring template listing logic.
type ListRecurringUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(transactionRepo adapter.TransactionRepository) *ListRecurringUseCase {
	return &ListRecurringUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's recurring transaction templates.
func (uc *ListRecurringUseCase) Execute(ctx context.Context, input ListRecurringInput) (*ListRecurringOutput, error) {
	recurring, err := uc.transactionRepo.FindRecurringByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}

	return &ListRecurringOutput{
		Recurring: recurring,
	}, nil
}
