// Package category contains tracked-category use cases.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID    uuid.UUID
	Name      string
	Kind      valueobject.ValueKind
	Unit      string
	Color     string // Optional, defaults to DefaultCategoryColor
	GoalType  valueobject.GoalType
	GoalValue float64
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			nil,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	if !isValidValueKind(input.Kind) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidValueKind,
			"value kind must be 'count', 'duration' or 'time'",
			domainerror.ErrInvalidValueKind,
		)
	}

	// Validate color format if provided
	if input.Color != "" && !hexColorRegex.MatchString(input.Color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}
	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	// A limit goal needs a positive threshold; other goal types carry no value.
	goalValue := NormalizeGoalValue(input.GoalType, input.GoalValue)
	if _, err := valueobject.NewGoalPolicy(input.GoalType, goalValue); err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidGoalPolicy,
			"goal type must be 'none', 'limit' or 'abstinence', with a positive value for 'limit'",
			domainerror.ErrInvalidGoalPolicy,
		)
	}

	exists, err := uc.categoryRepo.ExistsByNameAndUser(ctx, name, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(
		input.UserID,
		name,
		input.Kind,
		input.Unit,
		color,
		input.GoalType,
		goalValue,
	)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// NormalizeGoalValue zeroes the goal value for policies that do not use one.
func NormalizeGoalValue(goalType valueobject.GoalType, goalValue float64) float64 {
	if goalType != valueobject.GoalLimit {
		return 0
	}
	return goalValue
}

// isValidValueKind validates the value kind.
func isValidValueKind(kind valueobject.ValueKind) bool {
	return kind == valueobject.KindCount ||
		kind == valueobject.KindDuration ||
		kind == valueobject.KindClockTime
}
