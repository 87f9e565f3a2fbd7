package store

import (
	"context"
	"time"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
)

// AwardXP adds amount to the profile's XP total and recomputes the level as
// floor(xp/100)+1. It is a silent no-op when no profile is loaded: XP
// cannot be awarded to an unknown identity. Every award emits a transient
// notification record; the remote write mirrors the new totals but carries
// no atomicity guarantee against concurrent awards from other devices.
func (s *Store) AwardXP(ctx context.Context, amount int) {
	s.mu.Lock()
	if s.profile == nil {
		s.mu.Unlock()
		return
	}
	newXP := s.profile.XP + amount
	newLevel := entity.LevelForXP(newXP)
	s.profile.XP = newXP
	s.profile.Level = newLevel
	s.xpNotification = &XPNotification{Amount: amount, ID: time.Now().UnixNano()}
	profileID := s.profile.ID
	demo := s.demo
	s.mu.Unlock()

	if demo {
		return
	}
	patch := adapter.ProfilePatch{XP: &newXP, Level: &newLevel}
	if err := s.repos.Profiles.Update(ctx, profileID, patch); err != nil {
		s.logger.Warn("xp persist failed", "profile_id", profileID, "error", err)
	}
}

// LogFocusSession converts elapsed focus minutes into XP.
func (s *Store) LogFocusSession(ctx context.Context, minutes int) {
	if minutes <= 0 {
		return
	}
	xp := minutes * 2 / 5 // floor(minutes / 2.5)
	s.AwardXP(ctx, xp)
}

// LastXPNotification returns the most recent XP toast record, or nil. The
// store never expires it; one-shot display is a presentation concern.
func (s *Store) LastXPNotification() *XPNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.xpNotification == nil {
		return nil
	}
	n := *s.xpNotification
	return &n
}
