package entity

import (
	"time"

	"github.com/google/uuid"
)

// Habit represents a recurring habit tracked by completion dates.
type Habit struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Streak         int // stored for display only, recomputed from CompletedDates
	CompletedDates []string
	Color          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewHabit creates a new Habit entity for the given owner.
func NewHabit(userID uuid.UUID, title, color string) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		CompletedDates: []string{},
		Color:          color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a copy whose completion list is not shared with the receiver.
func (h *Habit) Clone() *Habit {
	c := *h
	c.CompletedDates = append([]string(nil), h.CompletedDates...)
	return &c
}

// HasDate reports whether date is present in the habit's completion list.
func (h *Habit) HasDate(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// CurrentStreak computes the number of consecutive completed days ending
// today or yesterday. A habit not completed today nor yesterday has a streak
// of zero regardless of past runs. The stored Streak field is never trusted;
// this function is the authoritative source for display.
func CurrentStreak(completedDates []string, now time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}

	completed := make(map[string]struct{}, len(completedDates))
	for _, d := range completedDates {
		completed[d] = struct{}{}
	}

	today := LocalDate(now)
	yesterday := LocalDate(now.AddDate(0, 0, -1))

	var anchor time.Time
	switch {
	case contains(completed, today):
		anchor = now
	case contains(completed, yesterday):
		anchor = now.AddDate(0, 0, -1)
	default:
		return 0
	}

	streak := 0
	for contains(completed, LocalDate(anchor)) {
		streak++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return streak
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
