package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// PreferenceStore persists the two user preferences (language, theme) under
// a single namespaced key per user. Preferences are read once at bootstrap
// and rewritten in full on every change.
type PreferenceStore interface {
	// Load returns the stored preferences, or the defaults when none exist.
	Load(ctx context.Context, userID uuid.UUID) (entity.Preferences, error)

	// Save rewrites the stored preferences.
	Save(ctx context.Context, userID uuid.UUID, prefs entity.Preferences) error
}
