// Package transaction contains money transaction use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository for use case tests.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	recurring    map[uuid.UUID]*entity.RecurringTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		recurring:    make(map[uuid.UUID]*entity.RecurringTransaction),
	}
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.transactions[id], nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByUserAndMonth(_ context.Context, userID uuid.UUID, year int, month time.Month) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID && t.Date.InMonth(year, month) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) CreateRecurring(_ context.Context, recurring *entity.RecurringTransaction) error {
	r.recurring[recurring.ID] = recurring
	return nil
}

func (r *fakeTransactionRepo) FindRecurringByUser(_ context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var out []*entity.RecurringTransaction
	for _, t := range r.recurring {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) DeleteRecurring(_ context.Context, id uuid.UUID) error {
	delete(r.recurring, id)
	return nil
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates transaction with default currency", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:   userID,
			Type:     entity.TransactionTypeExpense,
			Category: "groceries",
			Amount:   decimal.NewFromFloat(54.30),
			Date:     "2025-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Currency != DefaultCurrency {
			t.Errorf("expected currency %s, got %s", DefaultCurrency, output.Transaction.Currency)
		}
		if output.Transaction.IsRecurring {
			t.Error("expected one-off transaction")
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Type:   entity.TransactionType("transfer"),
			Amount: decimal.NewFromInt(10),
			Date:   "2025-05-10",
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.Zero,
			Date:   "2025-05-10",
		})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(10),
			Date:   "10/05/2025",
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionDate) {
			t.Errorf("expected ErrInvalidTransactionDate, got %v", err)
		}
	})
}

func TestListTransactionsUseCase_Summary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeTransactionRepo()

	create := NewCreateTransactionUseCase(repo)
	seed := []CreateTransactionInput{
		{UserID: userID, Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(3000), Date: "2025-05-01"},
		{UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromFloat(1200.50), Date: "2025-05-05"},
		{UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromFloat(99.50), Date: "2025-05-20"},
		// Different month, must not count.
		{UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(500), Date: "2025-04-30"},
	}
	for _, input := range seed {
		if _, err := create.Execute(ctx, input); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	uc := NewListTransactionsUseCase(repo)
	output, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Year: 2025, Month: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Transactions) != 3 {
		t.Errorf("expected 3 transactions, got %d", len(output.Transactions))
	}
	if !output.Summary.Income.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected income 3000, got %s", output.Summary.Income)
	}
	if !output.Summary.Expenses.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("expected expenses 1300, got %s", output.Summary.Expenses)
	}
	if !output.Summary.Balance.Equal(decimal.NewFromInt(1700)) {
		t.Errorf("expected balance 1700, got %s", output.Summary.Balance)
	}
}

func TestApplyRecurringUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeTransactionRepo()

	createRecurring := NewCreateRecurringUseCase(repo)
	if _, err := createRecurring.Execute(ctx, CreateRecurringInput{
		UserID:       userID,
		Type:         entity.TransactionTypeExpense,
		Category:     "rent",
		Amount:       decimal.NewFromInt(1500),
		RecurringDay: 5,
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := NewApplyRecurringUseCase(repo)

	t.Run("materializes template on its day", func(t *testing.T) {
		output, err := uc.Execute(ctx, ApplyRecurringInput{UserID: userID, Year: 2025, Month: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Created) != 1 {
			t.Fatalf("expected 1 created transaction, got %d", len(output.Created))
		}

		created := output.Created[0]
		if created.Date.String() != "2025-06-05" {
			t.Errorf("expected date 2025-06-05, got %s", created.Date)
		}
		if !created.IsRecurring || created.RecurringDay != 5 {
			t.Errorf("expected recurring marker with day 5, got %v/%d", created.IsRecurring, created.RecurringDay)
		}
	})

	t.Run("second run for same month creates nothing", func(t *testing.T) {
		output, err := uc.Execute(ctx, ApplyRecurringInput{UserID: userID, Year: 2025, Month: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Created) != 0 {
			t.Errorf("expected no new transactions, got %d", len(output.Created))
		}
	})

	t.Run("next month materializes again", func(t *testing.T) {
		output, err := uc.Execute(ctx, ApplyRecurringInput{UserID: userID, Year: 2025, Month: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Created) != 1 {
			t.Errorf("expected 1 created transaction, got %d", len(output.Created))
		}
	})
}

func TestCreateRecurringUseCase_DayBounds(t *testing.T) {
	ctx := context.Background()
	uc := NewCreateRecurringUseCase(newFakeTransactionRepo())

	for _, day := range []int{0, 29, 31, -1} {
		_, err := uc.Execute(ctx, CreateRecurringInput{
			UserID:       uuid.New(),
			Type:         entity.TransactionTypeExpense,
			Amount:       decimal.NewFromInt(100),
			RecurringDay: day,
		})
		if !errors.Is(err, domainerror.ErrInvalidRecurringDay) {
			t.Errorf("day %d: expected ErrInvalidRecurringDay, got %v", day, err)
		}
	}
}

// fakeSuggestionService records the labels passed to it.
type fakeSuggestionService struct {
	available  bool
	suggestion *adapter.CategorySuggestion
	err        error
	gotLabels  []string
}

func (s *fakeSuggestionService) SuggestCategory(_ context.Context, _ string, existingCategories []string) (*adapter.CategorySuggestion, error) {
	s.gotLabels = existingCategories
	return s.suggestion, s.err
}

func (s *fakeSuggestionService) IsAvailable() bool {
	return s.available
}

func TestSuggestCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("fails when service unconfigured", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(newFakeTransactionRepo(), &fakeSuggestionService{available: false})

		_, err := uc.Execute(ctx, SuggestCategoryInput{UserID: userID, Note: "uber home"})
		if !errors.Is(err, domainerror.ErrSuggestionUnavailable) {
			t.Errorf("expected ErrSuggestionUnavailable, got %v", err)
		}
	})

	t.Run("passes deduplicated existing labels", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		create := NewCreateTransactionUseCase(repo)
		for _, category := range []string{"transport", "transport", "groceries"} {
			if _, err := create.Execute(ctx, CreateTransactionInput{
				UserID:   userID,
				Type:     entity.TransactionTypeExpense,
				Category: category,
				Amount:   decimal.NewFromInt(10),
				Date:     "2025-05-10",
			}); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
		}

		service := &fakeSuggestionService{
			available:  true,
			suggestion: &adapter.CategorySuggestion{Category: "transport", Confidence: 0.9},
		}
		uc := NewSuggestCategoryUseCase(repo, service)

		output, err := uc.Execute(ctx, SuggestCategoryInput{UserID: userID, Note: "uber home"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Suggestion.Category != "transport" {
			t.Errorf("expected transport, got %s", output.Suggestion.Category)
		}
		if len(service.gotLabels) != 2 {
			t.Errorf("expected 2 distinct labels, got %v", service.gotLabels)
		}
	})
}
