package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

// Manager owns one Store per signed-in user. It subscribes to the session
// bus and tears a store down when its user signs out, so the subscription
// held by each store is always released regardless of exit path.
type Manager struct {
	repos  Repos
	bus    adapter.SessionBus
	prefs  adapter.PreferenceStore
	logger *slog.Logger

	mu          sync.Mutex
	stores      map[uuid.UUID]*Store
	unsubscribe func()
	closed      bool
}

// NewManager creates a Manager and subscribes it to the session bus.
func NewManager(repos Repos, bus adapter.SessionBus, prefs adapter.PreferenceStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		repos:  repos,
		bus:    bus,
		prefs:  prefs,
		logger: logger,
		stores: make(map[uuid.UUID]*Store),
	}
	m.unsubscribe = bus.Subscribe(m.handleEvent)
	return m
}

// StoreFor returns the store owning session's collections, creating and
// bootstrapping it on first use.
func (m *Manager) StoreFor(ctx context.Context, session *entity.Session) (*Store, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, domainerror.ErrStoreClosed
	}
	if s, ok := m.stores[session.UserID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	s := New(m.repos, &pinnedSessionProvider{session: session, bus: m.bus}, m.prefs, m.logger)
	if err := s.Bootstrap(ctx); err != nil {
		s.Close()
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.stores[session.UserID]; ok {
		// Lost the race with a concurrent first request.
		go s.Close()
		return existing, nil
	}
	m.stores[session.UserID] = s
	return s, nil
}

// DemoStore returns the shared demo-mode store, creating it on first use.
// Demo state is in-memory only and never written anywhere.
func (m *Manager) DemoStore(ctx context.Context) (*Store, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, domainerror.ErrStoreClosed
	}
	if s, ok := m.stores[entity.DemoUserID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	s := NewDemo(m.logger)
	if err := s.Bootstrap(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.stores[entity.DemoUserID]; ok {
		return existing, nil
	}
	m.stores[entity.DemoUserID] = s
	return s, nil
}

// handleEvent evicts the store of a user whose session ended. Other event
// types reach the stores through their own scoped subscriptions.
func (m *Manager) handleEvent(event adapter.SessionEvent) {
	if event.Type == adapter.SessionEventSignedOut {
		m.Evict(event.UserID)
	}
}

// Evict signs out, closes and removes the store for userID, if any.
func (m *Manager) Evict(userID uuid.UUID) {
	m.mu.Lock()
	s, ok := m.stores[userID]
	delete(m.stores, userID)
	m.mu.Unlock()

	if ok {
		s.SignOut()
		s.Close()
	}
}

// Close tears down every store and the manager's own subscription.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	unsub := m.unsubscribe
	m.unsubscribe = nil
	stores := make([]*Store, 0, len(m.stores))
	for _, s := range m.stores {
		stores = append(stores, s)
	}
	m.stores = map[uuid.UUID]*Store{}
	m.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	for _, s := range stores {
		s.Close()
	}
}

// pinnedSessionProvider scopes the session bus to one user. The current
// session is the one that created the store; events for other users never
// reach it.
type pinnedSessionProvider struct {
	session *entity.Session
	bus     adapter.SessionBus
}

func (p *pinnedSessionProvider) CurrentSession(context.Context) (*entity.Session, error) {
	return p.session, nil
}

func (p *pinnedSessionProvider) OnSessionChange(fn func(*entity.Session)) func() {
	userID := p.session.UserID
	return p.bus.Subscribe(func(event adapter.SessionEvent) {
		if event.UserID == userID {
			fn(event.Session)
		}
	})
}
