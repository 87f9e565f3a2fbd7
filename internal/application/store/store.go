// Package store implements the client-facing state synchronization layer.
// A Store owns in-memory copies of one user's collections, applies
// optimistic local mutations, and persists them to the remote store on a
// best-effort basis. Gamification side effects (XP, level) are computed
// here as part of specific mutations.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

// Repos bundles the per-collection remote-store interfaces a Store needs.
type Repos struct {
	Tasks        adapter.TaskRepository
	Habits       adapter.HabitRepository
	Notes        adapter.NoteRepository
	Transactions adapter.TransactionRepository
	Goals        adapter.GoalRepository
	Debts        adapter.DebtRepository
	Profiles     adapter.ProfileRepository
}

// Outcome reports how far a mutation got. A mutation that applied locally
// but not remotely has diverged until the next full fetch; callers that
// care can inspect the flags, everyone else keeps the original
// fire-and-forget behavior.
type Outcome struct {
	AppliedLocally    bool
	PersistedRemotely bool
	Resynced          bool
}

// XPNotification is the transient toast record emitted by every XP award.
// The ID is a monotonically distinguishing token; expiry is a presentation
// concern.
type XPNotification struct {
	Amount int
	ID     int64
}

// Store is the state synchronization store for one logical session.
// A single mutex stands in for the UI thread: mutations to local state are
// serialized, remote calls happen outside the lock.
type Store struct {
	repos    Repos
	sessions adapter.SessionProvider
	prefs    adapter.PreferenceStore
	logger   *slog.Logger

	mu          sync.Mutex
	demo        bool
	closed      bool
	loading     bool
	session     *entity.Session
	unsubscribe func()

	tasks        []*entity.Task
	habits       []*entity.Habit
	notes        []*entity.Note
	transactions []*entity.Transaction
	goals        []*entity.SavingGoal
	debts        []*entity.Debt
	profile      *entity.UserProfile
	preferences  entity.Preferences

	xpNotification *XPNotification
}

// New creates a Store. Call Bootstrap to establish the session and hydrate,
// and Close on teardown.
func New(repos Repos, sessions adapter.SessionProvider, prefs adapter.PreferenceStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		repos:       repos,
		sessions:    sessions,
		prefs:       prefs,
		logger:      logger,
		loading:     true,
		preferences: entity.DefaultPreferences(),
	}
}

// NewDemo creates a Store already in demo mode. Bootstrap performs no
// remote calls for a demo store.
func NewDemo(logger *slog.Logger) *Store {
	s := New(Repos{}, nil, nil, logger)
	s.demo = true
	return s
}

// Bootstrap establishes the session and subscribes to the session change
// stream. In demo mode it populates the synthetic session and profile and
// performs no remote calls. Absence of a session is not an error; loading
// completes regardless of outcome.
func (s *Store) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domainerror.ErrStoreClosed
	}
	if s.demo {
		s.session = entity.NewDemoSession()
		s.profile = entity.NewDemoProfile()
		s.loading = false
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	current, err := s.sessions.CurrentSession(ctx)
	if err != nil {
		s.logger.Warn("session lookup failed", "error", err)
		current = nil
	}

	s.mu.Lock()
	s.session = current
	s.loading = false
	s.unsubscribe = s.sessions.OnSessionChange(s.handleSessionChange)
	s.mu.Unlock()

	if current != nil {
		s.hydrate(ctx, current)
	}
	return nil
}

// handleSessionChange replaces the stored session unconditionally on every
// event. An absent-to-present transition triggers hydration.
func (s *Store) handleSessionChange(next *entity.Session) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	wasAbsent := s.session == nil
	s.session = next
	demo := s.demo
	s.mu.Unlock()

	if wasAbsent && next != nil && !demo {
		s.hydrate(context.Background(), next)
	}
}

// SignOut clears the session. A demo store simply drops its synthetic
// state; nothing was ever written anywhere.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.demo = false
	s.session = nil
	s.profile = nil
}

// Close releases the session subscription. Safe to call more than once.
func (s *Store) Close() {
	s.mu.Lock()
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.closed = true
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// currentSession returns the session or ErrNotSignedIn.
func (s *Store) currentSession() (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, domainerror.ErrStoreClosed
	}
	if s.session == nil {
		return nil, domainerror.ErrNotSignedIn
	}
	return s.session, nil
}

// isDemo reads the demo flag under the lock.
func (s *Store) isDemo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.demo
}

// Session returns the current session, or nil.
func (s *Store) Session() *entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// IsLoading reports whether the bootstrap session query has completed.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsDemo reports whether the store operates in demo mode.
func (s *Store) IsDemo() bool {
	return s.isDemo()
}

// Profile returns a copy of the loaded profile, or nil when not loaded.
func (s *Store) Profile() *entity.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// IsAdmin reports whether the loaded profile has the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil && s.profile.IsAdmin()
}

// The collection getters return copies. Mutations patch the stored
// entities in place under the lock, so handing out the live pointers
// would let callers read them unsynchronized.

// Tasks returns a copy of the task collection, newest first.
func (s *Store) Tasks() []*entity.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Habits returns a copy of the habit collection.
func (s *Store) Habits() []*entity.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Habit, len(s.habits))
	for i, h := range s.habits {
		out[i] = h.Clone()
	}
	return out
}

// Notes returns a copy of the note collection, newest first.
func (s *Store) Notes() []*entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Clone()
	}
	return out
}

// Transactions returns a copy of the transaction collection, most recent
// date first.
func (s *Store) Transactions() []*entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Transaction, len(s.transactions))
	for i, tx := range s.transactions {
		out[i] = tx.Clone()
	}
	return out
}

// Goals returns a copy of the saving-goal collection.
func (s *Store) Goals() []*entity.SavingGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.SavingGoal, len(s.goals))
	for i, g := range s.goals {
		out[i] = g.Clone()
	}
	return out
}

// Debts returns a copy of the debt collection.
func (s *Store) Debts() []*entity.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Debt, len(s.debts))
	for i, d := range s.debts {
		out[i] = d.Clone()
	}
	return out
}
