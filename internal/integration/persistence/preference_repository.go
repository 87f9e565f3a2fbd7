package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
)

// preferenceKeyPrefix namespaces the per-user preference records.
const preferenceKeyPrefix = "planner_prefs"

// preferenceRepository implements adapter.PreferenceStore on Redis. The
// whole {language, theme} record lives under one key per user and is
// rewritten in full on every change.
type preferenceRepository struct {
	client *redis.Client
}

// NewPreferenceRepository creates a new Redis-backed preference store.
func NewPreferenceRepository(client *redis.Client) adapter.PreferenceStore {
	return &preferenceRepository{
		client: client,
	}
}

func preferenceKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", preferenceKeyPrefix, userID)
}

// Load returns the stored preferences, or the defaults when none exist.
func (r *preferenceRepository) Load(ctx context.Context, userID uuid.UUID) (entity.Preferences, error) {
	raw, err := r.client.Get(ctx, preferenceKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.DefaultPreferences(), nil
		}
		return entity.Preferences{}, err
	}

	var prefs entity.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		// A corrupt record falls back to the defaults rather than
		// blocking bootstrap.
		return entity.DefaultPreferences(), nil
	}
	return prefs, nil
}

// Save rewrites the stored preferences. Records never expire.
func (r *preferenceRepository) Save(ctx context.Context, userID uuid.UUID, prefs entity.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, preferenceKey(userID), raw, 0).Err()
}
