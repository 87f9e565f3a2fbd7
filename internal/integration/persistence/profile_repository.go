package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by user id.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	var profileModel model.UserProfileModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// Create inserts a profile row.
func (r *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	profileModel := model.UserProfileFromEntity(profile)
	result := r.db.WithContext(ctx).Create(profileModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update applies a partial update to the profile with the given id.
func (r *profileRepository) Update(ctx context.Context, id uuid.UUID, patch adapter.ProfilePatch) error {
	columns := map[string]interface{}{}
	if patch.Role != nil {
		columns["role"] = string(*patch.Role)
	}
	if patch.IsActive != nil {
		columns["is_active"] = *patch.IsActive
	}
	if patch.SubscriptionExpiresAt != nil {
		columns["subscription_expires_at"] = *patch.SubscriptionExpiresAt
	}
	if patch.XP != nil {
		columns["xp"] = *patch.XP
	}
	if patch.Level != nil {
		columns["level"] = *patch.Level
	}
	if len(columns) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProfileNotFound
	}
	return nil
}

// FindAll retrieves every profile, newest level first. Admin use only.
func (r *profileRepository) FindAll(ctx context.Context) ([]*entity.UserProfile, error) {
	var profileModels []model.UserProfileModel
	result := r.db.WithContext(ctx).
		Order("xp DESC").
		Find(&profileModels)
	if result.Error != nil {
		return nil, result.Error
	}

	profiles := make([]*entity.UserProfile, len(profileModels))
	for i, pm := range profileModels {
		profiles[i] = pm.ToEntity()
	}
	return profiles, nil
}

// Delete removes the profile with the given id.
func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserProfileModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProfileNotFound
	}
	return nil
}
