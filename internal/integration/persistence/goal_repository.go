package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new saving-goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// FindByUserID retrieves all saving goals for a user.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error) {
	var goalModels []model.SavingGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Create inserts a saving goal and returns the stored row.
func (r *goalRepository) Create(ctx context.Context, goal *entity.SavingGoal) (*entity.SavingGoal, error) {
	goalModel := model.SavingGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// Update applies a partial update to the goal with the given id.
func (r *goalRepository) Update(ctx context.Context, userID, id uuid.UUID, patch adapter.GoalPatch) error {
	columns := map[string]interface{}{}
	if patch.Title != nil {
		columns["title"] = *patch.Title
	}
	if patch.TargetAmount != nil {
		columns["target_amount"] = *patch.TargetAmount
	}
	if patch.CurrentAmount != nil {
		columns["current_amount"] = *patch.CurrentAmount
	}
	if patch.Color != nil {
		columns["color"] = *patch.Color
	}
	if patch.Deadline != nil {
		columns["deadline"] = *patch.Deadline
	}
	if len(columns) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.SavingGoalModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete removes the goal with the given id.
func (r *goalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SavingGoalModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}
