// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// TransactionType represents the direction of a money transaction.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single money movement on the finances page.
// Category is a free-form label here, not a tracked metric category.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         TransactionType
	Category     string
	Amount       decimal.Decimal
	Currency     string
	Note         string
	Date         valueobject.LocalDate
	IsRecurring  bool
	RecurringDay int // Day of month the recurring template fires on; zero for one-offs
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	currency, note string,
	date valueobject.LocalDate,
	isRecurring bool,
	recurringDay int,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         transactionType,
		Category:     category,
		Amount:       amount,
		Currency:     currency,
		Note:         note,
		Date:         date,
		IsRecurring:  isRecurring,
		RecurringDay: recurringDay,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RecurringTransaction is a monthly template that materializes into a real
// transaction on its recurring day each month.
type RecurringTransaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         TransactionType
	Category     string
	Amount       decimal.Decimal
	Currency     string
	Note         string
	RecurringDay int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewRecurringTransaction creates a new RecurringTransaction entity.
func NewRecurringTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	currency, note string,
	recurringDay int,
) *RecurringTransaction {
	now := time.Now().UTC()

	return &RecurringTransaction{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         transactionType,
		Category:     category,
		Amount:       amount,
		Currency:     currency,
		Note:         note,
		RecurringDay: recurringDay,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MonthlySummary represents aggregated totals for one month of transactions.
type MonthlySummary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}
