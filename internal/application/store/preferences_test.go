package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

func TestPreferencesDefaults(t *testing.T) {
	f := newFixture(t)

	prefs := f.store.Preferences()
	if prefs.Language != entity.LanguageUzbek {
		t.Errorf("expected default language uz, got %s", prefs.Language)
	}
	if prefs.Theme != entity.ThemeDark {
		t.Errorf("expected default theme dark, got %s", prefs.Theme)
	}
}

func TestBootstrapLoadsStoredPreferences(t *testing.T) {
	session := &entity.Session{UserID: uuid.New(), Email: "user@example.com"}
	f := &storeFixture{
		tasks:        &taskRepoStub{},
		habits:       &habitRepoStub{},
		notes:        &noteRepoStub{},
		transactions: &transactionRepoStub{},
		goals:        &goalRepoStub{},
		debts:        &debtRepoStub{},
		profiles:     &profileRepoStub{row: entity.NewDefaultProfile(session.UserID, session.Email)},
		prefs: &prefStoreStub{
			hasStored: true,
			stored:    entity.Preferences{Language: entity.LanguageRussian, Theme: entity.ThemeLight},
		},
		sessions: &sessionProviderStub{session: session},
		session:  session,
	}
	f.store = New(f.repos(), f.sessions, f.prefs, testLogger())
	if err := f.store.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	prefs := f.store.Preferences()
	if prefs.Language != entity.LanguageRussian || prefs.Theme != entity.ThemeLight {
		t.Errorf("expected stored preferences applied, got %+v", prefs)
	}
}

func TestSetLanguagePersists(t *testing.T) {
	f := newFixture(t)

	f.store.SetLanguage(context.Background(), entity.LanguageRussian)

	if got := f.store.Preferences().Language; got != entity.LanguageRussian {
		t.Errorf("expected language ru, got %s", got)
	}
	if f.prefs.saveCalls != 1 {
		t.Errorf("expected 1 save, got %d", f.prefs.saveCalls)
	}
	if f.prefs.stored.Language != entity.LanguageRussian || f.prefs.stored.Theme != entity.ThemeDark {
		t.Errorf("expected the full record rewritten, got %+v", f.prefs.stored)
	}
}

func TestToggleTheme(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if got := f.store.ToggleTheme(ctx); got != entity.ThemeLight {
		t.Errorf("expected light after first toggle, got %s", got)
	}
	if got := f.store.ToggleTheme(ctx); got != entity.ThemeDark {
		t.Errorf("expected dark after second toggle, got %s", got)
	}
	if f.prefs.saveCalls != 2 {
		t.Errorf("expected 2 saves, got %d", f.prefs.saveCalls)
	}
}

func TestSetThemeSaveFailureKeepsLocalValue(t *testing.T) {
	f := newFixture(t)
	f.prefs.saveErr = errors.New("redis down")

	f.store.SetTheme(context.Background(), entity.ThemeLight)

	if got := f.store.Preferences().Theme; got != entity.ThemeLight {
		t.Errorf("expected the in-memory theme to change despite the save failure, got %s", got)
	}
}
