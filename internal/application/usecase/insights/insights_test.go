// Package insights contains use cases that run the aggregation engine over a
// category's observations.
package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// fakeCategoryRepo is an in-memory CategoryRepository for use case tests.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ExistsByNameAndUser(_ context.Context, name string, userID uuid.UUID) (bool, error) {
	for _, c := range r.categories {
		if c.UserID == userID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// fakeObservationRepo is an in-memory ObservationRepository for use case tests.
type fakeObservationRepo struct {
	observations []*entity.Observation
}

func (r *fakeObservationRepo) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]*entity.Observation, error) {
	var out []*entity.Observation
	for _, o := range r.observations {
		if o.CategoryID == categoryID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeObservationRepo) Upsert(_ context.Context, observation *entity.Observation) error {
	for i, o := range r.observations {
		if o.CategoryID == observation.CategoryID && o.Date == observation.Date {
			r.observations[i] = observation
			return nil
		}
	}
	r.observations = append(r.observations, observation)
	return nil
}

func (r *fakeObservationRepo) Delete(_ context.Context, categoryID uuid.UUID, date valueobject.LocalDate) error {
	for i, o := range r.observations {
		if o.CategoryID == categoryID && o.Date == date {
			r.observations = append(r.observations[:i], r.observations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeObservationRepo) DeleteByCategory(_ context.Context, categoryID uuid.UUID) error {
	var kept []*entity.Observation
	for _, o := range r.observations {
		if o.CategoryID != categoryID {
			kept = append(kept, o)
		}
	}
	r.observations = kept
	return nil
}

func date(y int, m time.Month, d int) valueobject.LocalDate {
	return valueobject.NewLocalDate(y, m, d)
}

func seedCategory(t *testing.T, repo *fakeCategoryRepo, userID uuid.UUID, kind valueobject.ValueKind, goalType valueobject.GoalType, goalValue float64) *entity.Category {
	t.Helper()
	category := entity.NewCategory(userID, "Screen time", kind, "min", entity.DefaultCategoryColor, goalType, goalValue)
	if err := repo.Create(context.Background(), category); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return category
}

func TestGetSnapshotUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("computes snapshot with display strings", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepo()
		obsRepo := &fakeObservationRepo{}
		category := seedCategory(t, categoryRepo, userID, valueobject.KindDuration, valueobject.GoalLimit, 120)

		today := date(2025, time.May, 10)
		values := map[valueobject.LocalDate]float64{
			date(2025, time.May, 8):    100,
			date(2025, time.May, 9):    150,
			today:                      125,
			date(2025, time.April, 20): 200,
		}
		for d, v := range values {
			if err := obsRepo.Upsert(ctx, entity.NewObservation(userID, category.ID, d, v)); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
		}

		uc := NewGetSnapshotUseCase(categoryRepo, obsRepo)
		output, err := uc.Execute(ctx, GetSnapshotInput{UserID: userID, CategoryID: category.ID, Today: today})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Snapshot.MonthlyTotal != 375 {
			t.Errorf("expected monthly total 375, got %v", output.Snapshot.MonthlyTotal)
		}
		if output.MonthlyTotalDisplay != "6h 15m" {
			t.Errorf("expected display 6h 15m, got %q", output.MonthlyTotalDisplay)
		}
		// Recorded days average (100+150+125)/3 = 125.
		if output.Snapshot.WeeklyAverage != 125 {
			t.Errorf("expected weekly average 125, got %v", output.Snapshot.WeeklyAverage)
		}
		if output.TodayCompliant {
			t.Error("expected today 125 over limit 120 to be non-compliant")
		}
		if output.Snapshot.MonthOverMonth.Difference != 175 {
			t.Errorf("expected month-over-month difference 175, got %v", output.Snapshot.MonthOverMonth.Difference)
		}
		if output.Snapshot.MonthOverMonth.IsImprovement {
			t.Error("an increase against a limit goal is not an improvement")
		}
	})

	t.Run("other user's category is rejected", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepo()
		obsRepo := &fakeObservationRepo{}
		category := seedCategory(t, categoryRepo, userID, valueobject.KindCount, valueobject.GoalNone, 0)

		uc := NewGetSnapshotUseCase(categoryRepo, obsRepo)
		_, err := uc.Execute(ctx, GetSnapshotInput{UserID: uuid.New(), CategoryID: category.ID, Today: date(2025, time.May, 10)})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyCategory) {
			t.Errorf("expected authorization error, got %v", err)
		}
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		uc := NewGetSnapshotUseCase(newFakeCategoryRepo(), &fakeObservationRepo{})
		_, err := uc.Execute(ctx, GetSnapshotInput{UserID: userID, CategoryID: uuid.New(), Today: date(2025, time.May, 10)})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestGetHeatmapUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("scores every day of the month", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepo()
		obsRepo := &fakeObservationRepo{}
		category := seedCategory(t, categoryRepo, userID, valueobject.KindDuration, valueobject.GoalLimit, 120)

		if err := obsRepo.Upsert(ctx, entity.NewObservation(userID, category.ID, date(2025, time.May, 10), 60)); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		uc := NewGetHeatmapUseCase(categoryRepo, obsRepo)
		output, err := uc.Execute(ctx, GetHeatmapInput{UserID: userID, CategoryID: category.ID, Year: 2025, Month: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Days) != 31 {
			t.Fatalf("expected 31 days, got %d", len(output.Days))
		}

		recorded := output.Days[9]
		if !recorded.Recorded || recorded.Value != 60 {
			t.Errorf("expected recorded day with value 60, got %+v", recorded)
		}
		if recorded.Intensity != 0.5 {
			t.Errorf("expected intensity 0.5, got %v", recorded.Intensity)
		}
		if recorded.Display != "1h" {
			t.Errorf("expected display 1h, got %q", recorded.Display)
		}

		empty := output.Days[0]
		if empty.Recorded || empty.Intensity != 0 {
			t.Errorf("expected empty day with zero intensity, got %+v", empty)
		}
	})

	t.Run("handles february lengths", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepo()
		obsRepo := &fakeObservationRepo{}
		category := seedCategory(t, categoryRepo, userID, valueobject.KindCount, valueobject.GoalNone, 0)

		uc := NewGetHeatmapUseCase(categoryRepo, obsRepo)

		leap, err := uc.Execute(ctx, GetHeatmapInput{UserID: userID, CategoryID: category.ID, Year: 2024, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(leap.Days) != 29 {
			t.Errorf("expected 29 days in Feb 2024, got %d", len(leap.Days))
		}

		normal, err := uc.Execute(ctx, GetHeatmapInput{UserID: userID, CategoryID: category.ID, Year: 2025, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(normal.Days) != 28 {
			t.Errorf("expected 28 days in Feb 2025, got %d", len(normal.Days))
		}
	})

	t.Run("rejects month outside 1-12", func(t *testing.T) {
		uc := NewGetHeatmapUseCase(newFakeCategoryRepo(), &fakeObservationRepo{})
		_, err := uc.Execute(ctx, GetHeatmapInput{UserID: userID, CategoryID: uuid.New(), Year: 2025, Month: 0})
		if !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Errorf("expected ErrInvalidMonth, got %v", err)
		}
	})
}
