package entity

import (
	"testing"
	"time"
)

func TestCurrentStreak(t *testing.T) {
	// Fixed reference point so the yesterday-or-today anchor is stable.
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	day := func(offset int) string {
		return LocalDate(now.AddDate(0, 0, offset))
	}

	t.Run("empty list has zero streak", func(t *testing.T) {
		if got := CurrentStreak(nil, now); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("run ending today counts from today", func(t *testing.T) {
		dates := []string{day(0), day(-1), day(-2)}
		if got := CurrentStreak(dates, now); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})

	t.Run("run ending yesterday still counts", func(t *testing.T) {
		dates := []string{day(-1), day(-2)}
		if got := CurrentStreak(dates, now); got != 2 {
			t.Errorf("expected 2, got %d", got)
		}
	})

	t.Run("run ending two days ago is broken", func(t *testing.T) {
		dates := []string{day(-2), day(-3), day(-4)}
		if got := CurrentStreak(dates, now); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("gap stops the count", func(t *testing.T) {
		dates := []string{day(0), day(-1), day(-3), day(-4)}
		if got := CurrentStreak(dates, now); got != 2 {
			t.Errorf("expected 2, got %d", got)
		}
	})

	t.Run("unsorted input does not matter", func(t *testing.T) {
		dates := []string{day(-2), day(0), day(-1)}
		if got := CurrentStreak(dates, now); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})

	t.Run("only today counts as one", func(t *testing.T) {
		dates := []string{day(0)}
		if got := CurrentStreak(dates, now); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})
}

func TestHabitHasDate(t *testing.T) {
	h := &Habit{CompletedDates: []string{"2024-05-01", "2024-05-02"}}

	if !h.HasDate("2024-05-01") {
		t.Error("expected HasDate to find 2024-05-01")
	}
	if h.HasDate("2024-05-03") {
		t.Error("expected HasDate to miss 2024-05-03")
	}
}
