// Package observation contains observation-related use cases.
package observation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// DeleteObservationInput represents the input for deleting an observation.
type DeleteObservationInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Date       string // YYYY-MM-DD
}

// DeleteObservationUseCase handles observation deletion logic.
type DeleteObservationUseCase struct {
	categoryRepo    adapter.CategoryRepository
	observationRepo adapter.ObservationRepository
}

// NewDeleteObservationUseCase creates a new DeleteObservationUseCase instance.
func NewDeleteObservationUseCase(
	categoryRepo adapter.CategoryRepository,
	observationRepo adapter.ObservationRepository,
) *DeleteObservationUseCase {
	return &DeleteObservationUseCase{
		categoryRepo:    categoryRepo,
		observationRepo: observationRepo,
	}
}

// Execute deletes the observation for the given category and date.
func (uc *DeleteObservationUseCase) Execute(ctx context.Context, input DeleteObservationInput) error {
	date, err := valueobject.ParseLocalDate(input.Date)
	if err != nil {
		return domainerror.NewObservationError(
			domainerror.ErrCodeInvalidObservationDate,
			"date must be a valid YYYY-MM-DD day",
			domainerror.ErrInvalidObservationDate,
		)
	}

	if err := authorizeCategory(ctx, uc.categoryRepo, input.CategoryID, input.UserID); err != nil {
		return err
	}

	if err := uc.observationRepo.Delete(ctx, input.CategoryID, date); err != nil {
		return fmt.Errorf("failed to delete observation: %w", err)
	}

	return nil
}
