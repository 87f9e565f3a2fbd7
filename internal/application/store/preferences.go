package store

import (
	"context"

	"github.com/planify/backend/internal/domain/entity"
)

// Preferences returns the current language/theme pair.
func (s *Store) Preferences() entity.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences
}

// SetLanguage changes the language and rewrites the persisted preferences.
func (s *Store) SetLanguage(ctx context.Context, lang entity.Language) {
	s.mu.Lock()
	s.preferences.Language = lang
	prefs := s.preferences
	s.mu.Unlock()
	s.savePreferences(ctx, prefs)
}

// SetTheme changes the theme and rewrites the persisted preferences.
func (s *Store) SetTheme(ctx context.Context, theme entity.Theme) {
	s.mu.Lock()
	s.preferences.Theme = theme
	prefs := s.preferences
	s.mu.Unlock()
	s.savePreferences(ctx, prefs)
}

// ToggleTheme flips between light and dark.
func (s *Store) ToggleTheme(ctx context.Context) entity.Theme {
	s.mu.Lock()
	s.preferences.Theme = s.preferences.Theme.Toggled()
	prefs := s.preferences
	s.mu.Unlock()
	s.savePreferences(ctx, prefs)
	return prefs.Theme
}

// savePreferences rewrites the whole preference record under the user's
// namespaced key. Failures are logged; the in-memory value already changed.
func (s *Store) savePreferences(ctx context.Context, prefs entity.Preferences) {
	if s.prefs == nil || s.isDemo() {
		return
	}
	session := s.Session()
	if session == nil {
		return
	}
	if err := s.prefs.Save(ctx, session.UserID, prefs); err != nil {
		s.logger.Warn("preferences save failed", "user_id", session.UserID, "error", err)
	}
}
