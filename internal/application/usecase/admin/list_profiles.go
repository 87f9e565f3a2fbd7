// Package admin contains admin-only profile management use cases.
package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
)

// ListProfilesInput represents the input for listing all profiles.
type ListProfilesInput struct {
	ActorID uuid.UUID
}

// ListProfilesOutput represents the output of listing all profiles.
type ListProfilesOutput struct {
	Profiles []*entity.UserProfile
}

// ListProfilesUseCase returns every profile, ordered by XP.
type ListProfilesUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewListProfilesUseCase creates a new ListProfilesUseCase instance.
func NewListProfilesUseCase(profileRepo adapter.ProfileRepository) *ListProfilesUseCase {
	return &ListProfilesUseCase{profileRepo: profileRepo}
}

// Execute lists the profiles.
func (uc *ListProfilesUseCase) Execute(ctx context.Context, input ListProfilesInput) (*ListProfilesOutput, error) {
	if err := requireAdmin(ctx, uc.profileRepo, input.ActorID); err != nil {
		return nil, err
	}

	profiles, err := uc.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return &ListProfilesOutput{Profiles: profiles}, nil
}
