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

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// FindByUserID retrieves all debts for a user.
func (r *debtRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i, dm := range debtModels {
		debts[i] = dm.ToEntity()
	}
	return debts, nil
}

// Create inserts a debt and returns the stored row.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) (*entity.Debt, error) {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).Create(debtModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// Update applies a partial update to the debt with the given id.
func (r *debtRepository) Update(ctx context.Context, userID, id uuid.UUID, patch adapter.DebtPatch) error {
	columns := map[string]interface{}{}
	if patch.Title != nil {
		columns["title"] = *patch.Title
	}
	if patch.TotalAmount != nil {
		columns["total_amount"] = *patch.TotalAmount
	}
	if patch.PaidAmount != nil {
		columns["paid_amount"] = *patch.PaidAmount
	}
	if patch.InterestRate != nil {
		columns["interest_rate"] = *patch.InterestRate
	}
	if len(columns) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.DebtModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDebtNotFound
	}
	return nil
}

// Delete removes the debt with the given id.
func (r *debtRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.DebtModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDebtNotFound
	}
	return nil
}
