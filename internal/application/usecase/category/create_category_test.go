// Package category contains tracked-category use cases.
package category

import (
	"context"
	"errors"
	"strings"
	"testing"

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
	return r.categories[id], nil
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

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates category with default color", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			Name:     "  Reading  ",
			Kind:     valueobject.KindDuration,
			Unit:     "min",
			GoalType: valueobject.GoalNone,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Reading" {
			t.Errorf("expected trimmed name Reading, got %q", output.Category.Name)
		}
		if output.Category.Color != entity.DefaultCategoryColor {
			t.Errorf("expected default color, got %q", output.Category.Color)
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected 1 stored category, got %d", len(repo.categories))
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "   ",
			Kind:   valueobject.KindCount,
		})
		if err == nil {
			t.Fatal("expected error for empty name")
		}
	})

	t.Run("rejects name above length limit", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   strings.Repeat("x", MaxCategoryNameLength+1),
			Kind:   valueobject.KindCount,
		})
		if !errors.Is(err, domainerror.ErrCategoryNameTooLong) {
			t.Errorf("expected ErrCategoryNameTooLong, got %v", err)
		}
	})

	t.Run("rejects unknown value kind", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "Steps",
			Kind:   valueobject.ValueKind("distance"),
		})
		if !errors.Is(err, domainerror.ErrInvalidValueKind) {
			t.Errorf("expected ErrInvalidValueKind, got %v", err)
		}
	})

	t.Run("rejects malformed color", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "Steps",
			Kind:   valueobject.KindCount,
			Color:  "blue",
		})
		if !errors.Is(err, domainerror.ErrInvalidColorFormat) {
			t.Errorf("expected ErrInvalidColorFormat, got %v", err)
		}
	})

	t.Run("rejects limit goal without positive value", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			Name:     "Screen time",
			Kind:     valueobject.KindDuration,
			GoalType: valueobject.GoalLimit,
		})
		if !errors.Is(err, domainerror.ErrInvalidGoalPolicy) {
			t.Errorf("expected ErrInvalidGoalPolicy, got %v", err)
		}
	})

	t.Run("zeroes goal value for non-limit goals", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:    userID,
			Name:      "Smoking",
			Kind:      valueobject.KindCount,
			GoalType:  valueobject.GoalAbstinence,
			GoalValue: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.GoalValue != 0 {
			t.Errorf("expected goal value 0, got %v", output.Category.GoalValue)
		}
	})

	t.Run("rejects duplicate name for same user", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		input := CreateCategoryInput{
			UserID: userID,
			Name:   "Reading",
			Kind:   valueobject.KindDuration,
		}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected ErrCategoryNameExists, got %v", err)
		}
	})
}
