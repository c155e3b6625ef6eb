// Package observation contains observation-related use cases.
package observation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// ListObservationsInput represents the input for listing a category's observations.
type ListObservationsInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// ListObservationsOutput represents the output of listing observations.
type ListObservationsOutput struct {
	Observations []*entity.Observation
}

// ListObservationsUseCase handles observation listing logic.
type ListObservationsUseCase struct {
	categoryRepo    adapter.CategoryRepository
	observationRepo adapter.ObservationRepository
}

// NewListObservationsUseCase creates a new ListObservationsUseCase instance.
func NewListObservationsUseCase(
	categoryRepo adapter.CategoryRepository,
	observationRepo adapter.ObservationRepository,
) *ListObservationsUseCase {
	return &ListObservationsUseCase{
		categoryRepo:    categoryRepo,
		observationRepo: observationRepo,
	}
}

// Execute retrieves all observations for the category. A category with no
// observations yields an empty list, not an error.
func (uc *ListObservationsUseCase) Execute(ctx context.Context, input ListObservationsInput) (*ListObservationsOutput, error) {
	if err := authorizeCategory(ctx, uc.categoryRepo, input.CategoryID, input.UserID); err != nil {
		return nil, err
	}

	observations, err := uc.observationRepo.FindByCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}

	return &ListObservationsOutput{
		Observations: observations,
	}, nil
}

// authorizeCategory verifies the category exists and belongs to the user.
func authorizeCategory(ctx context.Context, repo adapter.CategoryRepository, categoryID, userID uuid.UUID) error {
	category, err := repo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to access this category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}
	return nil
}
