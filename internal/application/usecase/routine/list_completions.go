// Package routine contains daily-routine use cases.
package routine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// ListCompletionsInput represents the input for a completion range query.
type ListCompletionsInput struct {
	UserID    uuid.UUID
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// ListCompletionsOutput represents the output of a completion range query.
type ListCompletionsOutput struct {
	Completions []*entity.RoutineCompletion
}

// ListCompletionsUseCase retrieves completions for the calendar view.
type ListCompletionsUseCase struct {
	routineRepo adapter.RoutineRepository
}

// NewListCompletionsUseCase creates a new ListCompletionsUseCase instance.
func NewListCompletionsUseCase(routineRepo adapter.RoutineRepository) *ListCompletionsUseCase {
	return &ListCompletionsUseCase{
		routineRepo: routineRepo,
	}
}

// Execute retrieves all completions with dates in [start, end].
func (uc *ListCompletionsUseCase) Execute(ctx context.Context, input ListCompletionsInput) (*ListCompletionsOutput, error) {
	start, err := valueobject.ParseLocalDate(input.StartDate)
	if err != nil {
		return nil, domainerror.NewRoutineError(
			domainerror.ErrCodeInvalidCompletionDate,
			"start date must be a valid YYYY-MM-DD day",
			domainerror.ErrInvalidCompletionDate,
		)
	}
	end, err := valueobject.ParseLocalDate(input.EndDate)
	if err != nil {
		return nil, domainerror.NewRoutineError(
			domainerror.ErrCodeInvalidCompletionDate,
			"end date must be a valid YYYY-MM-DD day",
			domainerror.ErrInvalidCompletionDate,
		)
	}
	if end.Before(start) {
		return nil, domainerror.NewRoutineError(
			domainerror.ErrCodeInvalidCompletionDate,
			"end date must not be before start date",
			domainerror.ErrInvalidCompletionDate,
		)
	}

	completions, err := uc.routineRepo.FindCompletionsInRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}

	return &ListCompletionsOutput{
		Completions: completions,
	}, nil
}
