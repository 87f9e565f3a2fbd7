package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
)

// DeleteProfileInput represents the input for an admin profile deletion.
type DeleteProfileInput struct {
	ActorID   uuid.UUID
	ProfileID uuid.UUID
}

// DeleteProfileOutput represents the output of an admin profile deletion.
type DeleteProfileOutput struct {
	Success bool
}

// DeleteProfileUseCase removes a profile from the system.
type DeleteProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewDeleteProfileUseCase creates a new DeleteProfileUseCase instance.
func NewDeleteProfileUseCase(profileRepo adapter.ProfileRepository) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{profileRepo: profileRepo}
}

// Execute performs the deletion.
func (uc *DeleteProfileUseCase) Execute(ctx context.Context, input DeleteProfileInput) (*DeleteProfileOutput, error) {
	if err := requireAdmin(ctx, uc.profileRepo, input.ActorID); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.Delete(ctx, input.ProfileID); err != nil {
		return nil, fmt.Errorf("failed to delete profile: %w", err)
	}

	return &DeleteProfileOutput{Success: true}, nil
}
