package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// DeleteRecurringInput represents the input for recurring template deletion.
type DeleteRecurringInput struct {
	UserID      uuid.UUID
	RecurringID uuid.UUID
}

// DeleteRecurringUseCase handles recurring template deletion logic. Already
// materialized transactions are left untouched.
type DeleteRecurringUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteRecurringUseCase creates a new DeleteRecurringUseCase instance.
func NewDeleteRecurringUseCase(transactionRepo adapter.TransactionRepository) *DeleteRecurringUseCase {
	return &DeleteRecurringUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute deletes the user's recurring template.
func (uc *DeleteRecurringUseCase) Execute(ctx context.Context, input DeleteRecurringInput) error {
	templates, err := uc.transactionRepo.FindRecurringByUser(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to find recurring transactions: %w", err)
	}

	for _, template := range templates {
		if template.ID == input.RecurringID {
			if err := uc.transactionRepo.DeleteRecurring(ctx, input.RecurringID); err != nil {
				return fmt.Errorf("failed to delete recurring transaction: %w", err)
			}
			return nil
		}
	}

	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"recurring transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
