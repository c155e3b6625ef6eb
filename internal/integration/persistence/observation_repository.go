// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/domain/valueobject"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
)

// observationRepository implements the adapter.ObservationRepository interface.
type observationRepository struct {
	db *gorm.DB
}

// NewObservationRepository creates a new observation repository instance.
func NewObservationRepository(db *gorm.DB) adapter.ObservationRepository {
	return &observationRepository{
		db: db,
	}
}

// FindByCategory retrieves all observations for a category.
func (r *observationRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Observation, error) {
	var observationModels []model.ObservationModel
	result := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("date ASC").
		Find(&observationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	observations := make([]*entity.Observation, len(observationModels))
	for i, om := range observationModels {
		observations[i] = om.ToEntity()
	}
	return observations, nil
}

// Upsert inserts or replaces the observation for (user, category, date).
// The conflict target is the unique (category_id, date) index, so recording
// a day twice overwrites the value instead of duplicating the row.
func (r *observationRepository) Upsert(ctx context.Context, observation *entity.Observation) error {
	observationModel := model.ObservationFromEntity(observation)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "category_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      observationModel.Value,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(observationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes the observation for (category, date), if any.
func (r *observationRepository) Delete(ctx context.Context, categoryID uuid.UUID, date valueobject.LocalDate) error {
	result := r.db.WithContext(ctx).
		Where("category_id = ? AND date = ?", categoryID, date.String()).
		Delete(&model.ObservationModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByCategory removes all observations for a category.
func (r *observationRepository) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Delete(&model.ObservationModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
