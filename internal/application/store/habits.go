package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

// xpPerHabitCompletion is awarded when a habit date is newly added.
const xpPerHabitCompletion = 5

// AddHabit inserts a habit remotely and prepends the stored row locally.
func (s *Store) AddHabit(ctx context.Context, title, color string) (*entity.Habit, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}

	habit := entity.NewHabit(session.UserID, title, color)
	if !s.isDemo() {
		stored, err := s.repos.Habits.Create(ctx, habit)
		if err != nil {
			return nil, err
		}
		habit = stored
	}

	s.mu.Lock()
	s.habits = append([]*entity.Habit{habit.Clone()}, s.habits...)
	s.mu.Unlock()
	return habit, nil
}

// ToggleHabitForDate adds or removes date from the habit's completion list
// (set semantics, idempotent per direction), persists the full updated list
// and awards XP only when the date was newly added.
func (s *Store) ToggleHabitForDate(ctx context.Context, id uuid.UUID, date string) (Outcome, error) {
	s.mu.Lock()
	var newDates []string
	added := false
	found := false
	for _, h := range s.habits {
		if h.ID != id {
			continue
		}
		found = true
		if h.HasDate(date) {
			newDates = make([]string, 0, len(h.CompletedDates)-1)
			for _, d := range h.CompletedDates {
				if d != date {
					newDates = append(newDates, d)
				}
			}
		} else {
			newDates = append(append([]string(nil), h.CompletedDates...), date)
			added = true
		}
		h.CompletedDates = newDates
		break
	}
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrHabitNotFound
	}

	outcome := Outcome{AppliedLocally: true}
	if !s.isDemo() {
		session, err := s.currentSession()
		if err != nil {
			return outcome, err
		}
		if err := s.repos.Habits.Update(ctx, session.UserID, id, adapter.HabitPatch{CompletedDates: &newDates}); err != nil {
			s.logger.Warn("habit toggle persist failed", "habit_id", id, "error", err)
		} else {
			outcome.PersistedRemotely = true
		}
	}

	if added {
		s.AwardXP(ctx, xpPerHabitCompletion)
	}
	return outcome, nil
}

// DeleteHabit removes the habit locally, then issues the remote delete. A
// remote failure is logged and answered with one corrective re-fetch of the
// whole habit collection.
func (s *Store) DeleteHabit(ctx context.Context, id uuid.UUID) (Outcome, error) {
	s.mu.Lock()
	kept := s.habits[:0:0]
	found := false
	for _, h := range s.habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	s.habits = kept
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrHabitNotFound
	}

	outcome := Outcome{AppliedLocally: true}
	if s.isDemo() {
		return outcome, nil
	}
	session, err := s.currentSession()
	if err != nil {
		return outcome, err
	}
	if err := s.repos.Habits.Delete(ctx, session.UserID, id); err != nil {
		s.logger.Error("habit delete failed, resyncing", "habit_id", id, "error", err)
		s.fetchHabits(ctx)
		outcome.Resynced = true
		return outcome, nil
	}
	outcome.PersistedRemotely = true
	return outcome, nil
}
