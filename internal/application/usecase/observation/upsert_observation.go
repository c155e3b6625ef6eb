// Package observation contains observation-related use cases.
package observation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// UpsertObservationInput represents the input for recording an observation.
type UpsertObservationInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Date       string // YYYY-MM-DD
	Value      float64
}

// UpsertObservationOutput represents the output of recording an observation.
type UpsertObservationOutput struct {
	Observation *entity.Observation
}

// UpsertObservationUseCase handles observation upsert logic. The write is
// idempotent on (user, category, date): recording the same day twice replaces
// the value rather than adding a row.
type UpsertObservationUseCase struct {
	categoryRepo    adapter.CategoryRepository
	observationRepo adapter.ObservationRepository
}

// NewUpsertObservationUseCase creates a new UpsertObservationUseCase instance.
func NewUpsertObservationUseCase(
	categoryRepo adapter.CategoryRepository,
	observationRepo adapter.ObservationRepository,
) *UpsertObservationUseCase {
	return &UpsertObservationUseCase{
		categoryRepo:    categoryRepo,
		observationRepo: observationRepo,
	}
}

// Execute records the observation.
func (uc *UpsertObservationUseCase) Execute(ctx context.Context, input UpsertObservationInput) (*UpsertObservationOutput, error) {
	date, err := valueobject.ParseLocalDate(input.Date)
	if err != nil {
		return nil, domainerror.NewObservationError(
			domainerror.ErrCodeInvalidObservationDate,
			"date must be a valid YYYY-MM-DD day",
			domainerror.ErrInvalidObservationDate,
		)
	}

	if input.Value < 0 {
		return nil, domainerror.NewObservationError(
			domainerror.ErrCodeNegativeObservationValue,
			"value must not be negative",
			domainerror.ErrNegativeObservationValue,
		)
	}

	if err := authorizeCategory(ctx, uc.categoryRepo, input.CategoryID, input.UserID); err != nil {
		return nil, err
	}

	observation := entity.NewObservation(input.UserID, input.CategoryID, date, input.Value)
	if err := uc.observationRepo.Upsert(ctx, observation); err != nil {
		return nil, fmt.Errorf("failed to upsert observation: %w", err)
	}

	return &UpsertObservationOutput{
		Observation: observation,
	}, nil
}
