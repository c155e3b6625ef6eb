// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(10);not null"`
	Category     string          `gorm:"type:varchar(100)"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null"`
	Note         string          `gorm:"type:text"`
	Date         string          `gorm:"type:varchar(10);not null;index"`
	IsRecurring  bool            `gorm:"not null;default:false"`
	RecurringDay int             `gorm:"not null;default:0"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.TransactionType(m.Type),
		Category:     m.Category,
		Amount:       m.Amount,
		Currency:     m.Currency,
		Note:         m.Note,
		Date:         parseStoredDate(m.Date),
		IsRecurring:  m.IsRecurring,
		RecurringDay: m.RecurringDay,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		Type:         string(transaction.Type),
		Category:     transaction.Category,
		Amount:       transaction.Amount,
		Currency:     transaction.Currency,
		Note:         transaction.Note,
		Date:         transaction.Date.String(),
		IsRecurring:  transaction.IsRecurring,
		RecurringDay: transaction.RecurringDay,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// RecurringTransactionModel represents the recurring_transactions table.
type RecurringTransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(10);not null"`
	Category     string          `gorm:"type:varchar(100)"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null"`
	Note         string          `gorm:"type:text"`
	RecurringDay int             `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringTransactionModel.
func (RecurringTransactionModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTransactionModel to a domain entity.
func (m *RecurringTransactionModel) ToEntity() *entity.RecurringTransaction {
	return &entity.RecurringTransaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.TransactionType(m.Type),
		Category:     m.Category,
		Amount:       m.Amount,
		Currency:     m.Currency,
		Note:         m.Note,
		RecurringDay: m.RecurringDay,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// RecurringTransactionFromEntity creates a RecurringTransactionModel from a domain entity.
func RecurringTransactionFromEntity(recurring *entity.RecurringTransaction) *RecurringTransactionModel {
	return &RecurringTransactionModel{
		ID:           recurring.ID,
		UserID:       recurring.UserID,
		Type:         string(recurring.Type),
		Category:     recurring.Category,
		Amount:       recurring.Amount,
		Currency:     recurring.Currency,
		Note:         recurring.Note,
		RecurringDay: recurring.RecurringDay,
		CreatedAt:    recurring.CreatedAt,
		UpdatedAt:    recurring.UpdatedAt,
	}
}
