package store

import (
	"context"
	"errors"

	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

// hydrate fetches every collection for the session's user. Each fetch is
// independent: a failure is logged and the collection stays empty, the
// remaining fetches still run.
func (s *Store) hydrate(ctx context.Context, session *entity.Session) {
	s.fetchProfile(ctx, session)
	s.fetchPreferences(ctx, session)
	s.fetchTasks(ctx)
	s.fetchHabits(ctx)
	s.fetchNotes(ctx)
	s.fetchTransactions(ctx)
	s.fetchGoals(ctx)
	s.fetchDebts(ctx)
}

// fetchProfile looks up the profile row and synthesizes a default on first
// sign-in. When the insert fails the default is not applied locally; the
// profile stays not-loaded and XP awards no-op until the next fetch.
func (s *Store) fetchProfile(ctx context.Context, session *entity.Session) {
	profile, err := s.repos.Profiles.FindByID(ctx, session.UserID)
	switch {
	case err == nil:
		s.mu.Lock()
		s.profile = profile
		s.mu.Unlock()
	case errors.Is(err, domainerror.ErrProfileNotFound):
		fresh := entity.NewDefaultProfile(session.UserID, session.Email)
		if insertErr := s.repos.Profiles.Create(ctx, fresh); insertErr != nil {
			s.logger.Warn("default profile insert failed", "user_id", session.UserID, "error", insertErr)
			return
		}
		s.mu.Lock()
		s.profile = fresh
		s.mu.Unlock()
	default:
		s.logger.Warn("profile fetch failed", "user_id", session.UserID, "error", err)
	}
}

func (s *Store) fetchPreferences(ctx context.Context, session *entity.Session) {
	if s.prefs == nil {
		return
	}
	prefs, err := s.prefs.Load(ctx, session.UserID)
	if err != nil {
		s.logger.Warn("preferences load failed", "user_id", session.UserID, "error", err)
		return
	}
	s.mu.Lock()
	s.preferences = prefs
	s.mu.Unlock()
}

func (s *Store) fetchTasks(ctx context.Context) {
	session, err := s.currentSession()
	if err != nil || s.isDemo() {
		return
	}
	tasks, err := s.repos.Tasks.FindByUserID(ctx, session.UserID)
	if err != nil {
		s.logger.Warn("task fetch failed", "error", err)
		return
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
}

func (s *Store) fetchHabits(ctx context.Context) {
	session, err := s.currentSession()
	if err != nil || s.isDemo() {
		return
	}
	habits, err := s.repos.Habits.FindByUserID(ctx, session.UserID)
	if err != nil {
		s.logger.Warn("habit fetch failed", "error", err)
		return
	}
	s.mu.Lock()
	s.habits = habits
	s.mu.Unlock()
}

func (s *Store) fetchNotes(ctx context.Context) {
	session, err := s.currentSession()
	if err != nil || s.isDemo() {
		return
	}
	notes, err := s.repos.Notes.FindByUserID(ctx, session.UserID)
	if err != nil {
		s.logger.Warn("note fetch failed", "error", err)
		return
	}
	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
}

func (s *Store) fetchTransactions(ctx context.Context) {
	session, err := s.currentSession()
	if err != nil || s.isDemo() {
		return
	}
	transactions, err := s.repos.Transactions.FindByUserID(ctx, session.UserID)
	if err != nil {
		s.logger.Warn("transaction fetch failed", "error", err)
		return
	}
	s.mu.Lock()
	s.transactions = transactions
	s.mu.Unlock()
}

func (s *Store) fetchGoals(ctx context.Context) {
	session, err := s.currentSession()
	if err != nil || s.isDemo() {
		return
	}
	goals, err := s.repos.Goals.FindByUserID(ctx, session.UserID)
	if err != nil {
		s.logger.Warn("goal fetch failed", "error", err)
		return
	}
	s.mu.Lock()
	s.goals = goals
	s.mu.Unlock()
}

func (s *Store) fetchDebts(ctx context.Context) {
	session, err := s.currentSession()
	if err != nil || s.isDemo() {
		return
	}
	debts, err := s.repos.Debts.FindByUserID(ctx, session.UserID)
	if err != nil {
		s.logger.Warn("debt fetch failed", "error", err)
		return
	}
	s.mu.Lock()
	s.debts = debts
	s.mu.Unlock()
}
