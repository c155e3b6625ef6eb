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

// exerciseRepository implements the adapter.ExerciseRepository interface.
type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new exercise repository instance.
func NewExerciseRepository(db *gorm.DB) adapter.ExerciseRepository {
	return &exerciseRepository{
		db: db,
	}
}

// FindDaysByUser retrieves all exercise days for a user, newest first.
func (r *exerciseRepository) FindDaysByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExerciseDay, error) {
	var dayModels []model.ExerciseDayModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&dayModels)
	if result.Error != nil {
		return nil, result.Error
	}

	days := make([]*entity.ExerciseDay, len(dayModels))
	for i, dm := range dayModels {
		days[i] = dm.ToEntity()
	}
	return days, nil
}

// UpsertDay inserts or replaces the exercise day for (user, date).
func (r *exerciseRepository) UpsertDay(ctx context.Context, day *entity.ExerciseDay) error {
	dayModel := model.ExerciseDayFromEntity(day)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":  dayModel.Completed,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(dayModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteDay removes the exercise day for (user, date), if any.
func (r *exerciseRepository) DeleteDay(ctx context.Context, userID uuid.UUID, date valueobject.LocalDate) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.String()).
		Delete(&model.ExerciseDayModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindNotesByUser retrieves all exercise notes for a user.
func (r *exerciseRepository) FindNotesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExerciseNote, error) {
	var noteModels []model.ExerciseNoteModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&noteModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notes := make([]*entity.ExerciseNote, len(noteModels))
	for i, nm := range noteModels {
		notes[i] = nm.ToEntity()
	}
	return notes, nil
}

// UpsertNote inserts or replaces the note for (user, date).
func (r *exerciseRepository) UpsertNote(ctx context.Context, note *entity.ExerciseNote) error {
	noteModel := model.ExerciseNoteFromEntity(note)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"note":       noteModel.Note,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(noteModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteNote removes the note for (user, date), if any.
func (r *exerciseRepository) DeleteNote(ctx context.Context, userID uuid.UUID, date valueobject.LocalDate) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.String()).
		Delete(&model.ExerciseNoteModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
