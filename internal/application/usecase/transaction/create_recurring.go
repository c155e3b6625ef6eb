package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateRecurringInput represents the input for a recurring template.
type CreateRecurringInput struct {
	UserID       uuid.UUID
	Type         entity.TransactionType
	Category     string
	Amount       decimal.Decimal
	Currency     string
	Note         string
	RecurringDay int
}

// CreateRecurringOutput represents the output of recurring template creation.
type CreateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// CreateRecurringUseCase creates a monthly recurring transaction template.
// The recurring day is capped at 28 so every month has the day.
type CreateRecurringUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(transactionRepo adapter.TransactionRepository) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the recurring template creation.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	if err := validateTransactionType(input.Type); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.RecurringDay < 1 || input.RecurringDay > 28 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurringDay,
			"recurring day must be between 1 and 28",
			domainerror.ErrInvalidRecurringDay,
		)
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	recurring := entity.NewRecurringTransaction(
		input.UserID,
		input.Type,
		strings.TrimSpace(input.Category),
		input.Amount,
		currency,
		input.Note,
		input.RecurringDay,
	)

	if err := uc.transactionRepo.CreateRecurring(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}

	return &CreateRecurringOutput{
		Recurring: recurring,
	}, nil
}
