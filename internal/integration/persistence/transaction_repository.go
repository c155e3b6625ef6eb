// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID, nil when absent.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUser retrieves all transactions for a user, newest first.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindByUserAndMonth retrieves a user's transactions dated in the given month.
// Dates are canonical YYYY-MM-DD strings, so a month is a prefix match.
func (r *transactionRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*entity.Transaction, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date LIKE ?", userID, prefix+"%").
		Order("date DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateRecurring creates a new recurring transaction template.
func (r *transactionRepository) CreateRecurring(ctx context.Context, recurring *entity.RecurringTransaction) error {
	recurringModel := model.RecurringTransactionFromEntity(recurring)
	result := r.db.WithContext(ctx).Create(recurringModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindRecurringByUser retrieves all recurring templates for a user.
func (r *transactionRepository) FindRecurringByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var recurringModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recurring_day ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	templates := make([]*entity.RecurringTransaction, len(recurringModels))
	for i, rm := range recurringModels {
		templates[i] = rm.ToEntity()
	}
	return templates, nil
}

// DeleteRecurring removes a recurring transaction template.
func (r *transactionRepository) DeleteRecurring(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringTransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toTransactionEntities(models []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(models))
	for i, tm := range models {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}
