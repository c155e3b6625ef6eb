// Package routine contains daily-routine use cases.
package routine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// UpdateRoutineInput represents the input for routine update. Nil pointer
// fields are left unchanged.
type UpdateRoutineInput struct {
	UserID    uuid.UUID
	RoutineID uuid.UUID
	Time      *string
	Activity  *string
	Weekdays  *[]string
	IsActive  *bool
}

// UpdateRoutineOutput represents the output of routine update.
type UpdateRoutineOutput struct {
	Routine *entity.Routine
}

// UpdateRoutineUseCase handles routine update logic.
type UpdateRoutineUseCase struct {
	routineRepo adapter.RoutineRepository
}

// NewUpdateRoutineUseCase creates a new UpdateRoutineUseCase instance.
func NewUpdateRoutineUseCase(routineRepo adapter.RoutineRepository) *UpdateRoutineUseCase {
	return &UpdateRoutineUseCase{
		routineRepo: routineRepo,
	}
}

// Execute performs the routine update.
func (uc *UpdateRoutineUseCase) Execute(ctx context.Context, input UpdateRoutineInput) (*UpdateRoutineOutput, error) {
	routine, err := findUserRoutine(ctx, uc.routineRepo, input.RoutineID, input.UserID)
	if err != nil {
		return nil, err
	}

	timeOfDay := routine.Time
	if input.Time != nil {
		timeOfDay = *input.Time
	}
	activity := routine.Activity
	if input.Activity != nil {
		activity = *input.Activity
	}
	weekdays := routine.Weekdays
	if input.Weekdays != nil {
		weekdays = *input.Weekdays
	}

	if err := validateRoutineFields(timeOfDay, activity, weekdays); err != nil {
		return nil, err
	}

	routine.Time = timeOfDay
	routine.Activity = strings.TrimSpace(activity)
	routine.Weekdays = normalizeWeekdays(weekdays)
	if input.IsActive != nil {
		routine.IsActive = *input.IsActive
	}
	routine.UpdatedAt = time.Now().UTC()

	if err := uc.routineRepo.Update(ctx, routine); err != nil {
		return nil, fmt.Errorf("failed to update routine: %w", err)
	}

	return &UpdateRoutineOutput{
		Routine: routine,
	}, nil
}

// findUserRoutine loads a routine and verifies ownership.
func findUserRoutine(ctx context.Context, repo adapter.RoutineRepository, routineID, userID uuid.UUID) (*entity.Routine, error) {
	routine, err := repo.FindByID(ctx, routineID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRoutineNotFound) {
			return nil, domainerror.NewRoutineError(
				domainerror.ErrCodeRoutineNotFound,
				"routine not found",
				domainerror.ErrRoutineNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find routine: %w", err)
	}
	if routine.UserID != userID {
		return nil, domainerror.NewRoutineError(
			domainerror.ErrCodeRoutineNotFound,
			"routine not found",
			domainerror.ErrRoutineNotFound,
		)
	}
	return routine, nil
}
