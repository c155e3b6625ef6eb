package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	UserID uuid.UUID
	Note   string
}

// SuggestCategoryOutput represents the output of a category suggestion.
type SuggestCategoryOutput struct {
	Suggestion *adapter.CategorySuggestion
}

// SuggestCategoryUseCase proposes a spending category for a transaction
// note, preferring labels the user already uses.
type SuggestCategoryUseCase struct {
	transactionRepo   adapter.TransactionRepository
	suggestionService adapter.SuggestionService
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(
	transactionRepo adapter.TransactionRepository,
	suggestionService adapter.SuggestionService,
) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		transactionRepo:   transactionRepo,
		suggestionService: suggestionService,
	}
}

// Execute asks the suggestion service for a category.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion service is not configured",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	note := strings.TrimSpace(input.Note)
	if note == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"note must not be empty",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	seen := make(map[string]bool)
	labels := make([]string, 0, len(transactions))
	for _, t := range transactions {
		if t.Category != "" && !seen[t.Category] {
			seen[t.Category] = true
			labels = append(labels, t.Category)
		}
	}

	suggestion, err := uc.suggestionService.SuggestCategory(ctx, note, labels)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion failed",
			err,
		)
	}

	return &SuggestCategoryOutput{
		Suggestion: suggestion,
	}, nil
}
