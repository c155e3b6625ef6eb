// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/domain/valueobject"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
)

// taskRepository implements the adapter.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(db *gorm.DB) adapter.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create creates a new task in the database.
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskFromEntity(task)
	result := r.db.WithContext(ctx).Create(taskModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a task by its ID, nil when absent.
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskModel model.TaskModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&taskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// FindByUserAndRange retrieves a user's tasks with dates in [start, end],
// ordered by date then time of day.
func (r *taskRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end valueobject.LocalDate) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start.String(), end.String()).
		Order("date ASC, time ASC").
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tasks := make([]*entity.Task, len(taskModels))
	for i, tm := range taskModels {
		tasks[i] = tm.ToEntity()
	}
	return tasks, nil
}

// Update updates an existing task in the database.
func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskFromEntity(task)
	result := r.db.WithContext(ctx).Save(taskModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a task from the database.
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
