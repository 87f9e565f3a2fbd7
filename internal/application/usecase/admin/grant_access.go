package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
)

// GrantAccessInput represents the input for a one-month access grant.
type GrantAccessInput struct {
	ActorID   uuid.UUID
	ProfileID uuid.UUID
}

// GrantAccessOutput represents the output of a one-month access grant.
type GrantAccessOutput struct {
	Profile *entity.UserProfile
}

// GrantAccessUseCase extends a profile's subscription by one month and
// activates it. An unexpired subscription is extended from its current
// expiry, not from now.
type GrantAccessUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGrantAccessUseCase creates a new GrantAccessUseCase instance.
func NewGrantAccessUseCase(profileRepo adapter.ProfileRepository) *GrantAccessUseCase {
	return &GrantAccessUseCase{profileRepo: profileRepo}
}

// Execute performs the grant.
func (uc *GrantAccessUseCase) Execute(ctx context.Context, input GrantAccessInput) (*GrantAccessOutput, error) {
	if err := requireAdmin(ctx, uc.profileRepo, input.ActorID); err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	now := time.Now().UTC()
	base := now
	if profile.SubscriptionExpiresAt != nil && profile.SubscriptionExpiresAt.After(now) {
		base = *profile.SubscriptionExpiresAt
	}
	expiry := base.AddDate(0, 1, 0)

	active := true
	expiryPtr := &expiry
	patch := adapter.ProfilePatch{
		IsActive:              &active,
		SubscriptionExpiresAt: &expiryPtr,
	}
	if err := uc.profileRepo.Update(ctx, input.ProfileID, patch); err != nil {
		return nil, fmt.Errorf("failed to grant access: %w", err)
	}

	profile, err = uc.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}

	return &GrantAccessOutput{Profile: profile}, nil
}
