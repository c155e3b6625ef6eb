package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// ApplyRecurringInput represents the input for recurring materialization.
type ApplyRecurringInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 1-12
}

// ApplyRecurringOutput reports the transactions created by the run.
type ApplyRecurringOutput struct {
	Created []*entity.Transaction
}

// ApplyRecurringUseCase materializes recurring templates into real
// transactions for one month. Running it twice for the same month creates
// nothing new.
type ApplyRecurringUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewApplyRecurringUseCase creates a new ApplyRecurringUseCase instance.
func NewApplyRecurringUseCase(transactionRepo adapter.TransactionRepository) *ApplyRecurringUseCase {
	return &ApplyRecurringUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute creates one transaction per template not yet materialized in the month.
func (uc *ApplyRecurringUseCase) Execute(ctx context.Context, input ApplyRecurringInput) (*ApplyRecurringOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"month must be between 1 and 12",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	templates, err := uc.transactionRepo.FindRecurringByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find recurring transactions: %w", err)
	}
	if len(templates) == 0 {
		return &ApplyRecurringOutput{}, nil
	}

	existing, err := uc.transactionRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, time.Month(input.Month))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	created := make([]*entity.Transaction, 0, len(templates))
	for _, template := range templates {
		if materialized(existing, template) {
			continue
		}

		transaction := entity.NewTransaction(
			template.UserID,
			template.Type,
			template.Category,
			template.Amount,
			template.Currency,
			template.Note,
			valueobject.NewLocalDate(input.Year, time.Month(input.Month), template.RecurringDay),
			true,
			template.RecurringDay,
		)

		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return nil, fmt.Errorf("failed to materialize recurring transaction: %w", err)
		}

		slog.Debug("Materialized recurring transaction",
			"userID", template.UserID,
			"templateID", template.ID,
			"year", input.Year,
			"month", input.Month,
		)
		created = append(created, transaction)
	}

	return &ApplyRecurringOutput{
		Created: created,
	}, nil
}

// materialized reports whether the month already holds a transaction spawned
// from the template. Matching is by recurring flag, day, type and category.
func materialized(existing []*entity.Transaction, template *entity.RecurringTransaction) bool {
	for _, t := range existing {
		if t.IsRecurring &&
			t.RecurringDay == template.RecurringDay &&
			t.Type == template.Type &&
			t.Category == template.Category {
			return true
		}
	}
	return false
}
