// Package insights contains use cases that run the aggregation engine over a
// category's observations. All statistics are computed relative to an
// explicit reference day so results are deterministic; the wall clock is
// only consulted at the HTTP edge.
package insights

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/aggregate"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// GetSnapshotInput represents the input for computing a category snapshot.
type GetSnapshotInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Today      valueobject.LocalDate
}

// GetSnapshotOutput carries the derived statistics plus the display forms the
// dashboard renders them with.
type GetSnapshotOutput struct {
	Category              *entity.Category
	Snapshot              aggregate.Snapshot
	WeeklyAverageDisplay  string
	MonthlyAverageDisplay string
	MonthlyTotalDisplay   string
	MonthOverMonthDisplay string
	TodayCompliant        bool
}

// GetSnapshotUseCase computes the aggregate snapshot for one category.
type GetSnapshotUseCase struct {
	categoryRepo    adapter.CategoryRepository
	observationRepo adapter.ObservationRepository
}

// NewGetSnapshotUseCase creates a new GetSnapshotUseCase instance.
func NewGetSnapshotUseCase(
	categoryRepo adapter.CategoryRepository,
	observationRepo adapter.ObservationRepository,
) *GetSnapshotUseCase {
	return &GetSnapshotUseCase{
		categoryRepo:    categoryRepo,
		observationRepo: observationRepo,
	}
}

// Execute materializes the category's observations and runs the engine.
func (uc *GetSnapshotUseCase) Execute(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	category, policy, obs, err := loadCategoryObservations(ctx, uc.categoryRepo, uc.observationRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	snapshot := aggregate.BuildSnapshot(obs, policy, input.Today)

	todayValue := obs[input.Today]

	return &GetSnapshotOutput{
		Category:              category,
		Snapshot:              snapshot,
		WeeklyAverageDisplay:  aggregate.FormatValue(snapshot.WeeklyAverage, category.Kind, category.Unit),
		MonthlyAverageDisplay: aggregate.FormatValue(snapshot.MonthlyAverage, category.Kind, category.Unit),
		MonthlyTotalDisplay:   aggregate.FormatValue(snapshot.MonthlyTotal, category.Kind, category.Unit),
		MonthOverMonthDisplay: formatComparison(snapshot.MonthOverMonth),
		TodayCompliant:        policy.IsCompliant(todayValue),
	}, nil
}

// formatComparison renders the month-over-month change as a signed percentage.
func formatComparison(c aggregate.Comparison) string {
	if c.Percentage == 0 {
		return "no change"
	}
	arrow := "↑"
	if c.Difference < 0 {
		arrow = "↓"
	}
	pct := c.Percentage
	if pct < 0 {
		pct = -pct
	}
	return fmt.Sprintf("%s %.1f%%", arrow, pct)
}

// loadCategoryObservations authorizes the category and materializes its
// observation set for the engine.
func loadCategoryObservations(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	observationRepo adapter.ObservationRepository,
	categoryID, userID uuid.UUID,
) (*entity.Category, valueobject.GoalPolicy, aggregate.ObservationSet, error) {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, valueobject.GoalPolicy{}, nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, valueobject.GoalPolicy{}, nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return nil, valueobject.GoalPolicy{}, nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to access this category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	policy, err := category.Policy()
	if err != nil {
		return nil, valueobject.GoalPolicy{}, nil, fmt.Errorf("stored goal policy is invalid: %w", err)
	}

	observations, err := observationRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, valueobject.GoalPolicy{}, nil, fmt.Errorf("failed to load observations: %w", err)
	}

	obs := make(aggregate.ObservationSet, len(observations))
	for _, o := range observations {
		obs[o.Date] = o.Value
	}
	return category, policy, obs, nil
}
