package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
)

// UpdateProfileInput represents the input for an admin profile edit. Nil
// fields are left untouched.
type UpdateProfileInput struct {
	ActorID               uuid.UUID
	ProfileID             uuid.UUID
	Role                  *entity.Role
	IsActive              *bool
	SubscriptionExpiresAt **time.Time
}

// UpdateProfileOutput represents the output of an admin profile edit.
type UpdateProfileOutput struct {
	Profile *entity.UserProfile
}

// UpdateProfileUseCase applies an admin edit to a profile.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{profileRepo: profileRepo}
}

// Execute performs the profile edit.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if err := requireAdmin(ctx, uc.profileRepo, input.ActorID); err != nil {
		return nil, err
	}

	patch := adapter.ProfilePatch{
		Role:                  input.Role,
		IsActive:              input.IsActive,
		SubscriptionExpiresAt: input.SubscriptionExpiresAt,
	}
	if err := uc.profileRepo.Update(ctx, input.ProfileID, patch); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	profile, err := uc.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}

	return &UpdateProfileOutput{Profile: profile}, nil
}
