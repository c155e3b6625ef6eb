package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing one month of
// transactions. Year and Month select the calendar month.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 1-12
}

// ListTransactionsOutput carries the month's transactions and their summary.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Summary      entity.MonthlySummary
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's transactions for the month and totals them.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"month must be between 1 and 12",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	transactions, err := uc.transactionRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, time.Month(input.Month))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Summary:      summarize(transactions),
	}, nil
}

// summarize totals one month of transactions into income, expenses and balance.
func summarize(transactions []*entity.Transaction) entity.MonthlySummary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return entity.MonthlySummary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}
