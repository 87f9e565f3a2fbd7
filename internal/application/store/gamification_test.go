package store

import (
	"context"
	"errors"
	"testing"
)

func TestAwardXPUpdatesProfileAndLevel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.AwardXP(ctx, 95)
	p := f.store.Profile()
	if p.XP != 95 || p.Level != 1 {
		t.Errorf("expected xp=95 level=1, got xp=%d level=%d", p.XP, p.Level)
	}

	// Crossing the 100-XP boundary advances the level.
	f.store.AwardXP(ctx, 10)
	p = f.store.Profile()
	if p.XP != 105 || p.Level != 2 {
		t.Errorf("expected xp=105 level=2, got xp=%d level=%d", p.XP, p.Level)
	}

	if f.profiles.updateCalls != 2 {
		t.Errorf("expected 2 remote profile updates, got %d", f.profiles.updateCalls)
	}
	patch := f.profiles.lastPatch
	if patch.XP == nil || *patch.XP != 105 || patch.Level == nil || *patch.Level != 2 {
		t.Errorf("expected the remote patch to carry xp=105 level=2, got %+v", patch)
	}
}

func TestAwardXPEmitsNotification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.AwardXP(ctx, 5)
	first := f.store.LastXPNotification()
	if first == nil || first.Amount != 5 {
		t.Fatalf("expected a notification of 5, got %+v", first)
	}

	f.store.AwardXP(ctx, 10)
	second := f.store.LastXPNotification()
	if second == nil || second.Amount != 10 {
		t.Fatalf("expected a notification of 10, got %+v", second)
	}
	if second.ID == first.ID {
		t.Error("expected successive notifications to carry distinct ids")
	}
}

func TestAwardXPRemoteFailureKeepsLocalTotals(t *testing.T) {
	f := newFixture(t)
	f.profiles.updateErr = errors.New("update rejected")

	f.store.AwardXP(context.Background(), 30)
	p := f.store.Profile()
	if p.XP != 30 {
		t.Errorf("expected the local XP to survive the remote failure, got %d", p.XP)
	}
	if n := f.store.LastXPNotification(); n == nil || n.Amount != 30 {
		t.Errorf("expected the notification despite the remote failure, got %+v", n)
	}
}

func TestLogFocusSession(t *testing.T) {
	cases := []struct {
		minutes int
		xp      int
	}{
		{25, 10},
		{50, 20},
		{7, 2},  // floor(7 / 2.5)
		{1, 0},  // too short to earn anything
		{0, 0},  // ignored
		{-5, 0}, // ignored
	}

	for _, c := range cases {
		f := newFixture(t)
		f.store.LogFocusSession(context.Background(), c.minutes)
		if got := f.store.Profile().XP; got != c.xp {
			t.Errorf("LogFocusSession(%d): expected %d XP, got %d", c.minutes, c.xp, got)
		}
	}
}

func TestLogFocusSessionDemoKeepsLocalXP(t *testing.T) {
	f := newDemoFixture(t)

	f.store.LogFocusSession(context.Background(), 25)
	if got := f.store.Profile().XP; got != 130 {
		t.Errorf("expected demo xp 130, got %d", got)
	}
	if f.profiles.updateCalls != 0 {
		t.Errorf("expected no remote update in demo mode, got %d", f.profiles.updateCalls)
	}
}
