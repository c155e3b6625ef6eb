// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type     string  `json:"type" binding:"required,oneof=income expense"`
	Category string  `json:"category,omitempty"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency,omitempty"`
	Note     string  `json:"note,omitempty"`
	Date     string  `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type     *string  `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Category *string  `json:"category,omitempty"`
	Amount   *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Currency *string  `json:"currency,omitempty"`
	Note     *string  `json:"note,omitempty"`
	Date     *string  `json:"date,omitempty"`
}

// CreateRecurringRequest represents the request body for a recurring template.
type CreateRecurringRequest struct {
	Type         string  `json:"type" binding:"required,oneof=income expense"`
	Category     string  `json:"category,omitempty"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Currency     string  `json:"currency,omitempty"`
	Note         string  `json:"note,omitempty"`
	RecurringDay int     `json:"recurring_day" binding:"required,min=1,max=28"`
}

// SuggestCategoryRequest represents the request body for an AI category suggestion.
type SuggestCategoryRequest struct {
	Note string `json:"note" binding:"required,min=1"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	Note         string    `json:"note,omitempty"`
	Date         string    `json:"date"`
	IsRecurring  bool      `json:"is_recurring"`
	RecurringDay int       `json:"recurring_day,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MonthlySummaryResponse represents a month's income/expense totals.
type MonthlySummaryResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// TransactionListResponse represents the response for a month's transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse  `json:"transactions"`
	Summary      MonthlySummaryResponse `json:"summary"`
}

// RecurringResponse represents a recurring template in API responses.
type RecurringResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	Note         string    `json:"note,omitempty"`
	RecurringDay int       `json:"recurring_day"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecurringListResponse represents the response for listing recurring templates.
type RecurringListResponse struct {
	Recurring []RecurringResponse `json:"recurring"`
}

// ApplyRecurringResponse reports the transactions materialized by a run.
type ApplyRecurringResponse struct {
	Created []TransactionResponse `json:"created"`
}

// SuggestCategoryResponse represents an AI category suggestion.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID.String(),
		Type:         string(txn.Type),
		Category:     txn.Category,
		Amount:       txn.Amount.String(),
		Currency:     txn.Currency,
		Note:         txn.Note,
		Date:         txn.Date.String(),
		IsRecurring:  txn.IsRecurring,
		RecurringDay: txn.RecurringDay,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a month's transactions and summary to a DTO.
func ToTransactionListResponse(txns []*entity.Transaction, summary entity.MonthlySummary) TransactionListResponse {
	items := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		items[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: items,
		Summary: MonthlySummaryResponse{
			Income:   summary.Income.String(),
			Expenses: summary.Expenses.String(),
			Balance:  summary.Balance.String(),
		},
	}
}

// ToRecurringResponse converts a RecurringTransaction entity to a RecurringResponse DTO.
func ToRecurringResponse(rec *entity.RecurringTransaction) RecurringResponse {
	return RecurringResponse{
		ID:           rec.ID.String(),
		Type:         string(rec.Type),
		Category:     rec.Category,
		Amount:       rec.Amount.String(),
		Currency:     rec.Currency,
		Note:         rec.Note,
		RecurringDay: rec.RecurringDay,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

// ToRecurringListResponse converts recurring templates to a RecurringListResponse.
func ToRecurringListResponse(recs []*entity.RecurringTransaction) RecurringListResponse {
	items := make([]RecurringResponse, len(recs))
	for i, rec := range recs {
		items[i] = ToRecurringResponse(rec)
	}
	return RecurringListResponse{
		Recurring: items,
	}
}

// ToApplyRecurringResponse converts a materialization run's output to a DTO.
func ToApplyRecurringResponse(created []*entity.Transaction) ApplyRecurringResponse {
	items := make([]TransactionResponse, len(created))
	for i, txn := range created {
		items[i] = ToTransactionResponse(txn)
	}
	return ApplyRecurringResponse{
		Created: items,
	}
}
