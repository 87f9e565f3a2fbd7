package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// UserProfileModel represents the user_profiles table in the database.
// Its primary key equals the owning account's id; the row is created
// lazily on first sign-in.
type UserProfileModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email                 string     `gorm:"type:varchar(255);not null"`
	Role                  string     `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive              bool       `gorm:"column:is_active;default:true"`
	SubscriptionExpiresAt *time.Time `gorm:"column:subscription_expires_at"`
	XP                    int        `gorm:"column:xp;default:0"`
	Level                 int        `gorm:"default:1"`
	CreatedAt             time.Time  `gorm:"not null"`
	UpdatedAt             time.Time  `gorm:"not null"`
}

// TableName returns the table name for the UserProfileModel.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// ToEntity converts a UserProfileModel to a domain UserProfile entity.
func (m *UserProfileModel) ToEntity() *entity.UserProfile {
	return &entity.UserProfile{
		ID:                    m.ID,
		Email:                 m.Email,
		Role:                  entity.Role(m.Role),
		IsActive:              m.IsActive,
		SubscriptionExpiresAt: m.SubscriptionExpiresAt,
		XP:                    m.XP,
		Level:                 m.Level,
	}
}

// UserProfileFromEntity creates a UserProfileModel from a domain UserProfile entity.
func UserProfileFromEntity(profile *entity.UserProfile) *UserProfileModel {
	return &UserProfileModel{
		ID:                    profile.ID,
		Email:                 profile.Email,
		Role:                  string(profile.Role),
		IsActive:              profile.IsActive,
		SubscriptionExpiresAt: profile.SubscriptionExpiresAt,
		XP:                    profile.XP,
		Level:                 profile.Level,
	}
}
