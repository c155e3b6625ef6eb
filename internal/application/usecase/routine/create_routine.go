// Package routine contains daily-routine use cases.
package routine

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// timeOfDayRegex matches 24-hour HH:MM values.
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// CreateRoutineInput represents the input for routine creation.
type CreateRoutineInput struct {
	UserID   uuid.UUID
	Time     string
	Activity string
	Weekdays []string
}

// CreateRoutineOutput represents the output of routine creation.
type CreateRoutineOutput struct {
	Routine *entity.Routine
}

// CreateRoutineUseCase handles routine creation logic.
type CreateRoutineUseCase struct {
	routineRepo adapter.RoutineRepository
}

// NewCreateRoutineUseCase creates a new CreateRoutineUseCase instance.
func NewCreateRoutineUseCase(routineRepo adapter.RoutineRepository) *CreateRoutineUseCase {
	return &CreateRoutineUseCase{
		routineRepo: routineRepo,
	}
}

// Execute performs the routine creation.
func (uc *CreateRoutineUseCase) Execute(ctx context.Context, input CreateRoutineInput) (*CreateRoutineOutput, error) {
	if err := validateRoutineFields(input.Time, input.Activity, input.Weekdays); err != nil {
		return nil, err
	}

	routine := entity.NewRoutine(input.UserID, input.Time, strings.TrimSpace(input.Activity), normalizeWeekdays(input.Weekdays))

	if err := uc.routineRepo.Create(ctx, routine); err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}

	return &CreateRoutineOutput{
		Routine: routine,
	}, nil
}

// validateRoutineFields checks the time, activity and weekday values shared
// by create and update.
func validateRoutineFields(timeOfDay, activity string, weekdays []string) error {
	if !timeOfDayRegex.MatchString(timeOfDay) {
		return domainerror.NewRoutineError(
			domainerror.ErrCodeInvalidRoutineTime,
			"time must be a 24-hour HH:MM value",
			domainerror.ErrInvalidRoutineTime,
		)
	}

	if strings.TrimSpace(activity) == "" {
		return domainerror.NewRoutineError(
			domainerror.ErrCodeEmptyRoutineActivity,
			"activity must not be empty",
			domainerror.ErrEmptyRoutineActivity,
		)
	}

	for _, day := range weekdays {
		if !slices.Contains(entity.ValidWeekdays, strings.ToLower(day)) {
			return domainerror.NewRoutineError(
				domainerror.ErrCodeInvalidWeekday,
				fmt.Sprintf("unknown weekday %q", day),
				domainerror.ErrInvalidWeekday,
			)
		}
	}

	return nil
}

// normalizeWeekdays lowercases and deduplicates the weekday list.
func normalizeWeekdays(weekdays []string) []string {
	out := make([]string, 0, len(weekdays))
	for _, day := range weekdays {
		day = strings.ToLower(day)
		if !slices.Contains(out, day) {
			out = append(out, day)
		}
	}
	return out
}
