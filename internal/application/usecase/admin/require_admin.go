package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	domainerror "github.com/planify/backend/internal/domain/error"
)

// requireAdmin resolves the actor's profile and rejects non-admins.
func requireAdmin(ctx context.Context, profileRepo adapter.ProfileRepository, actorID uuid.UUID) error {
	profile, err := profileRepo.FindByID(ctx, actorID)
	if err != nil {
		return domainerror.ErrAdminRequired
	}
	if !profile.IsAdmin() {
		return domainerror.ErrAdminRequired
	}
	return nil
}
