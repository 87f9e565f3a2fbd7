// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/persistence/model"
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

// FindByUserID retrieves all tasks for a user, newest first.
func (r *taskRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
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

// Create inserts a task and returns the stored row.
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	taskModel := model.TaskFromEntity(task)
	result := r.db.WithContext(ctx).Create(taskModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// CreateBatch inserts several tasks in one call and returns the stored rows.
func (r *taskRepository) CreateBatch(ctx context.Context, tasks []*entity.Task) ([]*entity.Task, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	taskModels := make([]*model.TaskModel, len(tasks))
	for i, t := range tasks {
		taskModels[i] = model.TaskFromEntity(t)
	}
	result := r.db.WithContext(ctx).Create(taskModels)
	if result.Error != nil {
		return nil, result.Error
	}

	stored := make([]*entity.Task, len(taskModels))
	for i, tm := range taskModels {
		stored[i] = tm.ToEntity()
	}
	return stored, nil
}

// Update applies a partial update to the task with the given id. Patch
// fields are renamed to their storage columns (Completed -> is_completed,
// TimeBlock -> time_block).
func (r *taskRepository) Update(ctx context.Context, userID, id uuid.UUID, patch adapter.TaskPatch) error {
	columns := map[string]interface{}{}
	if patch.Title != nil {
		columns["title"] = *patch.Title
	}
	if patch.Completed != nil {
		columns["is_completed"] = *patch.Completed
	}
	if patch.Priority != nil {
		columns["priority"] = string(*patch.Priority)
	}
	if patch.Date != nil {
		columns["date"] = *patch.Date
	}
	if patch.TimeBlock != nil {
		columns["time_block"] = *patch.TimeBlock
	}
	if patch.Tags != nil {
		// The tags column is serializer:json; map updates bypass the
		// serializer, so marshal by hand.
		raw, err := json.Marshal(*patch.Tags)
		if err != nil {
			return err
		}
		columns["tags"] = string(raw)
	}
	if len(columns) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTaskNotFound
	}
	return nil
}

// Delete removes the task with the given id.
func (r *taskRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTaskNotFound
	}
	return nil
}
