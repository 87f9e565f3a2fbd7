package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/planify/backend/internal/domain/entity"
)

func openTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)
	return redis.NewClient(&redis.Options{Addr: server.Addr()})
}

func TestPreferenceRepositoryDefaultsWhenEmpty(t *testing.T) {
	repo := NewPreferenceRepository(openTestRedis(t))

	prefs, err := repo.Load(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if prefs != entity.DefaultPreferences() {
		t.Errorf("expected defaults for a new user, got %+v", prefs)
	}
}

func TestPreferenceRepositoryRoundTrip(t *testing.T) {
	repo := NewPreferenceRepository(openTestRedis(t))
	ctx := context.Background()
	userID := uuid.New()

	want := entity.Preferences{Language: entity.LanguageRussian, Theme: entity.ThemeLight}
	if err := repo.Save(ctx, userID, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := repo.Load(ctx, userID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	// Another user's record is untouched.
	other, err := repo.Load(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if other != entity.DefaultPreferences() {
		t.Errorf("expected defaults for the other user, got %+v", other)
	}
}

func TestPreferenceRepositoryCorruptRecordFallsBack(t *testing.T) {
	client := openTestRedis(t)
	repo := NewPreferenceRepository(client)
	ctx := context.Background()
	userID := uuid.New()

	if err := client.Set(ctx, preferenceKey(userID), "{not json", 0).Err(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	prefs, err := repo.Load(ctx, userID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if prefs != entity.DefaultPreferences() {
		t.Errorf("expected defaults for a corrupt record, got %+v", prefs)
	}
}
