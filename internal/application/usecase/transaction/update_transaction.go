package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// UpdateTransactionInput represents a partial transaction update. Nil
// pointers leave the corresponding field unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Type          *entity.TransactionType
	Category      *string
	Amount        *decimal.Decimal
	Currency      *string
	Note          *string
	Date          *string
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute applies the requested changes to the user's transaction.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := findUserTransaction(ctx, uc.transactionRepo, input.UserID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		if err := validateTransactionType(*input.Type); err != nil {
			return nil, err
		}
		transaction.Type = *input.Type
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		transaction.Amount = *input.Amount
	}
	if input.Date != nil {
		date, err := valueobject.ParseLocalDate(*input.Date)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date must be a valid YYYY-MM-DD day",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.Date = date
	}
	if input.Category != nil {
		transaction.Category = strings.TrimSpace(*input.Category)
	}
	if input.Currency != nil {
		transaction.Currency = strings.ToUpper(strings.TrimSpace(*input.Currency))
	}
	if input.Note != nil {
		transaction.Note = *input.Note
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// findUserTransaction loads a transaction and checks ownership. Transactions
// owned by someone else surface as not found.
func findUserTransaction(ctx context.Context, repo adapter.TransactionRepository, userID, transactionID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if transaction == nil || transaction.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return transaction, nil
}
