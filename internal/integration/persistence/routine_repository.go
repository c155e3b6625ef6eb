// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
)

// routineRepository implements the adapter.RoutineRepository interface.
type routineRepository struct {
	db *gorm.DB
}

// NewRoutineRepository creates a new routine repository instance.
func NewRoutineRepository(db *gorm.DB) adapter.RoutineRepository {
	return &routineRepository{
		db: db,
	}
}

// Create creates a new routine in the database.
func (r *routineRepository) Create(ctx context.Context, routine *entity.Routine) error {
	routineModel := model.RoutineFromEntity(routine)
	result := r.db.WithContext(ctx).Create(routineModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a routine by its ID.
func (r *routineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Routine, error) {
	var routineModel model.RoutineModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&routineModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRoutineNotFound
		}
		return nil, result.Error
	}
	return routineModel.ToEntity(), nil
}

// FindActiveByUser retrieves a user's active routines ordered by time of day.
func (r *routineRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Routine, error) {
	var routineModels []model.RoutineModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("time ASC").
		Find(&routineModels)
	if result.Error != nil {
		return nil, result.Error
	}

	routines := make([]*entity.Routine, len(routineModels))
	for i, rm := range routineModels {
		routines[i] = rm.ToEntity()
	}
	return routines, nil
}

// Update updates an existing routine in the database.
func (r *routineRepository) Update(ctx context.Context, routine *entity.Routine) error {
	routineModel := model.RoutineFromEntity(routine)
	result := r.db.WithContext(ctx).Save(routineModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a routine and its completions from the database.
func (r *routineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("routine_id = ?", id).Delete(&model.RoutineCompletionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.RoutineModel{}, "id = ?", id).Error
	})
}

// FindCompletion retrieves the completion for (routine, date), nil when absent.
func (r *routineRepository) FindCompletion(ctx context.Context, routineID uuid.UUID, date valueobject.LocalDate) (*entity.RoutineCompletion, error) {
	var completionModel model.RoutineCompletionModel
	result := r.db.WithContext(ctx).
		Where("routine_id = ? AND date = ?", routineID, date.String()).
		First(&completionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return completionModel.ToEntity(), nil
}

// CreateCompletion marks a routine completed on a date.
func (r *routineRepository) CreateCompletion(ctx context.Context, completion *entity.RoutineCompletion) error {
	completionModel := model.RoutineCompletionFromEntity(completion)
	result := r.db.WithContext(ctx).Create(completionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteCompletion removes a completion row.
func (r *routineRepository) DeleteCompletion(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RoutineCompletionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindCompletionsInRange retrieves a user's completions with dates in [start, end].
func (r *routineRepository) FindCompletionsInRange(ctx context.Context, userID uuid.UUID, start, end valueobject.LocalDate) ([]*entity.RoutineCompletion, error) {
	var completionModels []model.RoutineCompletionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start.String(), end.String()).
		Order("date ASC").
		Find(&completionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	completions := make([]*entity.RoutineCompletion, len(completionModels))
	for i, cm := range completionModels {
		completions[i] = cm.ToEntity()
	}
	return completions, nil
}
