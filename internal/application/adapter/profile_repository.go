package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// ProfilePatch is a partial update for a user profile. Nil fields are left
// untouched.
type ProfilePatch struct {
	Role                  *entity.Role
	IsActive              *bool
	SubscriptionExpiresAt **time.Time
	XP                    *int
	Level                 *int
}

// ProfileRepository defines the remote-store interface for user profiles.
type ProfileRepository interface {
	// FindByID retrieves a profile by user id. Returns ErrProfileNotFound
	// when no row exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)

	// Create inserts a profile row.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// Update applies a partial update to the profile with the given id.
	Update(ctx context.Context, id uuid.UUID, patch ProfilePatch) error

	// FindAll retrieves every profile. Admin use only.
	FindAll(ctx context.Context) ([]*entity.UserProfile, error)

	// Delete removes the profile with the given id.
	Delete(ctx context.Context, id uuid.UUID) error
}
