package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/planify/backend/internal/domain/error"
)

func TestAddHabit(t *testing.T) {
	f := newFixture(t)

	habit, err := f.store.AddHabit(context.Background(), "meditate", "#7c3aed")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if habit.Title != "meditate" || habit.Color != "#7c3aed" {
		t.Errorf("unexpected habit fields: %+v", habit)
	}
	if len(habit.CompletedDates) != 0 {
		t.Error("expected a fresh habit with no completions")
	}
	if f.habits.createCalls != 1 {
		t.Errorf("expected 1 remote insert, got %d", f.habits.createCalls)
	}
	// Creating a habit awards nothing; XP comes from completions.
	if got := f.store.Profile().XP; got != 0 {
		t.Errorf("expected no XP on habit creation, got %d", got)
	}
}

func TestToggleHabitForDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	habit, _ := f.store.AddHabit(ctx, "run", "#fff")
	const date = "2024-05-10"

	outcome, err := f.store.ToggleHabitForDate(ctx, habit.ID, date)
	if err != nil {
		t.Fatalf("ToggleHabitForDate failed: %v", err)
	}
	if !outcome.AppliedLocally || !outcome.PersistedRemotely {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	if !f.store.Habits()[0].HasDate(date) {
		t.Error("expected the date to be added")
	}
	if f.habits.lastPatch.CompletedDates == nil {
		t.Fatal("expected the remote patch to carry the full date list")
	}
	if got := *f.habits.lastPatch.CompletedDates; len(got) != 1 || got[0] != date {
		t.Errorf("unexpected persisted date list: %v", got)
	}
	if got := f.store.Profile().XP; got != xpPerHabitCompletion {
		t.Errorf("expected %d XP for a new completion, got %d", xpPerHabitCompletion, got)
	}

	// Toggling the same date off removes it and awards nothing.
	if _, err := f.store.ToggleHabitForDate(ctx, habit.ID, date); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if f.store.Habits()[0].HasDate(date) {
		t.Error("expected the date to be removed")
	}
	if got := *f.habits.lastPatch.CompletedDates; len(got) != 0 {
		t.Errorf("expected an empty persisted list, got %v", got)
	}
	if got := f.store.Profile().XP; got != xpPerHabitCompletion {
		t.Errorf("expected no XP refund on removal, got %d", got)
	}
	if f.habits.updateCalls != 2 {
		t.Errorf("expected 2 remote updates, got %d", f.habits.updateCalls)
	}
}

func TestToggleHabitPreservesOtherDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	habit, _ := f.store.AddHabit(ctx, "run", "#fff")

	f.store.ToggleHabitForDate(ctx, habit.ID, "2024-05-08")
	f.store.ToggleHabitForDate(ctx, habit.ID, "2024-05-09")
	f.store.ToggleHabitForDate(ctx, habit.ID, "2024-05-08")

	got := f.store.Habits()[0].CompletedDates
	if len(got) != 1 || got[0] != "2024-05-09" {
		t.Errorf("expected only 2024-05-09 to remain, got %v", got)
	}
}

func TestToggleHabitUnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.ToggleHabitForDate(context.Background(), uuid.New(), "2024-05-10")
	if !errors.Is(err, domainerror.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestDeleteHabitFailureTriggersSingleResync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	habit, _ := f.store.AddHabit(ctx, "run", "#fff")
	findCallsBefore := f.habits.findCalls
	f.habits.deleteErr = errors.New("delete rejected")

	outcome, err := f.store.DeleteHabit(ctx, habit.ID)
	if err != nil {
		t.Fatalf("expected the delete failure to be absorbed, got %v", err)
	}
	if !outcome.AppliedLocally || outcome.PersistedRemotely || !outcome.Resynced {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	if got := f.habits.findCalls - findCallsBefore; got != 1 {
		t.Errorf("expected exactly 1 corrective re-fetch, got %d", got)
	}
	if len(f.store.Habits()) != 1 {
		t.Errorf("expected the resync to restore the server row, got %d habits", len(f.store.Habits()))
	}
}

func TestDeleteHabit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	habit, _ := f.store.AddHabit(ctx, "run", "#fff")

	outcome, err := f.store.DeleteHabit(ctx, habit.ID)
	if err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if !outcome.PersistedRemotely || outcome.Resynced {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	if len(f.store.Habits()) != 0 {
		t.Error("expected the habit removed locally")
	}
}

func TestHabitsSnapshotIsolatedFromToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	habit, _ := f.store.AddHabit(ctx, "read", "#fff")

	snapshot := f.store.Habits()
	if _, err := f.store.ToggleHabitForDate(ctx, habit.ID, "2024-05-10"); err != nil {
		t.Fatalf("ToggleHabitForDate failed: %v", err)
	}

	if len(snapshot[0].CompletedDates) != 0 {
		t.Errorf("expected the snapshot's date list untouched, got %v", snapshot[0].CompletedDates)
	}
	if !f.store.Habits()[0].HasDate("2024-05-10") {
		t.Error("expected the store to carry the toggle")
	}
}
