// Package insights contains use cases that run the aggregation engine over a
// category's observations.
package insights

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/aggregate"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// GetHeatmapInput represents the input for computing one month's heat map.
type GetHeatmapInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Year       int
	Month      int
}

// HeatmapDay is one calendar day's rendering data.
type HeatmapDay struct {
	Date      valueobject.LocalDate
	Value     float64
	Display   string
	Intensity float64
	Compliant bool
	Recorded  bool
}

// GetHeatmapOutput represents the output of the heat map computation.
type GetHeatmapOutput struct {
	Days []HeatmapDay
}

// GetHeatmapUseCase scores every day of a calendar month for heat-map rendering.
type GetHeatmapUseCase struct {
	categoryRepo    adapter.CategoryRepository
	observationRepo adapter.ObservationRepository
}

// NewGetHeatmapUseCase creates a new GetHeatmapUseCase instance.
func NewGetHeatmapUseCase(
	categoryRepo adapter.CategoryRepository,
	observationRepo adapter.ObservationRepository,
) *GetHeatmapUseCase {
	return &GetHeatmapUseCase{
		categoryRepo:    categoryRepo,
		observationRepo: observationRepo,
	}
}

// Execute computes intensity and compliance for each day of the month.
// Days without an observation are included with zero intensity so the
// calendar renders without gaps.
func (uc *GetHeatmapUseCase) Execute(ctx context.Context, input GetHeatmapInput) (*GetHeatmapOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewInsightsError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	category, policy, obs, err := loadCategoryObservations(ctx, uc.categoryRepo, uc.observationRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Normalizing day 0 of the next month yields the last day of this month.
	month := time.Month(input.Month)
	daysInMonth := valueobject.NewLocalDate(input.Year, month+1, 0).Day

	days := make([]HeatmapDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := valueobject.NewLocalDate(input.Year, month, d)
		value, recorded := obs[date]
		days = append(days, HeatmapDay{
			Date:      date,
			Value:     value,
			Display:   aggregate.FormatValue(value, category.Kind, category.Unit),
			Intensity: policy.HeatIntensity(value, category.Kind),
			Compliant: policy.IsCompliant(value),
			Recorded:  recorded,
		})
	}

	return &GetHeatmapOutput{Days: days}, nil
}
