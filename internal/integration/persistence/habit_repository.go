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

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// FindByUserID retrieves all habits for a user.
func (r *habitRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.Habit, len(habitModels))
	for i, hm := range habitModels {
		habits[i] = hm.ToEntity()
	}
	return habits, nil
}

// Create inserts a habit and returns the stored row.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) (*entity.Habit, error) {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Create(habitModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return habitModel.ToEntity(), nil
}

// Update applies a partial update to the habit with the given id. The
// completion list is rewritten in full under completed_dates.
func (r *habitRepository) Update(ctx context.Context, userID, id uuid.UUID, patch adapter.HabitPatch) error {
	columns := map[string]interface{}{}
	if patch.Title != nil {
		columns["title"] = *patch.Title
	}
	if patch.Color != nil {
		columns["color"] = *patch.Color
	}
	if patch.CompletedDates != nil {
		raw, err := json.Marshal(*patch.CompletedDates)
		if err != nil {
			return err
		}
		columns["completed_dates"] = string(raw)
	}
	if len(columns) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrHabitNotFound
	}
	return nil
}

// Delete removes the habit with the given id.
func (r *habitRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.HabitModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrHabitNotFound
	}
	return nil
}
