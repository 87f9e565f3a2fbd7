package store

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
)

type sessionBusStub struct {
	mu       sync.Mutex
	handlers map[int]func(adapter.SessionEvent)
	next     int
}

func (b *sessionBusStub) Publish(event adapter.SessionEvent) {
	b.mu.Lock()
	handlers := make([]func(adapter.SessionEvent), 0, len(b.handlers))
	for _, fn := range b.handlers {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()
	for _, fn := range handlers {
		fn(event)
	}
}

func (b *sessionBusStub) Subscribe(fn func(adapter.SessionEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers == nil {
		b.handlers = map[int]func(adapter.SessionEvent){}
	}
	id := b.next
	b.next++
	b.handlers[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

func (b *sessionBusStub) subscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

func newManagerFixture() (*Manager, *sessionBusStub, Repos) {
	bus := &sessionBusStub{}
	repos := Repos{
		Tasks:        &taskRepoStub{},
		Habits:       &habitRepoStub{},
		Notes:        &noteRepoStub{},
		Transactions: &transactionRepoStub{},
		Goals:        &goalRepoStub{},
		Debts:        &debtRepoStub{},
		Profiles:     &profileRepoStub{},
	}
	return NewManager(repos, bus, &prefStoreStub{}, testLogger()), bus, repos
}

func TestManagerReturnsSameStorePerUser(t *testing.T) {
	m, _, _ := newManagerFixture()
	defer m.Close()
	session := &entity.Session{UserID: uuid.New(), Email: "a@example.com"}

	first, err := m.StoreFor(context.Background(), session)
	if err != nil {
		t.Fatalf("StoreFor failed: %v", err)
	}
	second, err := m.StoreFor(context.Background(), session)
	if err != nil {
		t.Fatalf("StoreFor failed: %v", err)
	}
	if first != second {
		t.Error("expected the same store instance for the same user")
	}
	if first.Session() == nil || first.Session().UserID != session.UserID {
		t.Error("expected the store pinned to the creating session")
	}
}

func TestManagerIsolatesUsers(t *testing.T) {
	m, bus, _ := newManagerFixture()
	defer m.Close()
	ctx := context.Background()
	alice := &entity.Session{UserID: uuid.New(), Email: "alice@example.com"}
	bob := &entity.Session{UserID: uuid.New(), Email: "bob@example.com"}

	aliceStore, err := m.StoreFor(ctx, alice)
	if err != nil {
		t.Fatalf("StoreFor failed: %v", err)
	}
	bobStore, err := m.StoreFor(ctx, bob)
	if err != nil {
		t.Fatalf("StoreFor failed: %v", err)
	}
	if aliceStore == bobStore {
		t.Fatal("expected distinct stores per user")
	}

	if _, err := aliceStore.AddNote(ctx, "alice's note"); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if len(bobStore.Notes()) != 0 {
		t.Error("expected bob's store untouched by alice's mutation")
	}

	// Bob signing out does not disturb alice's session.
	bus.Publish(adapter.SessionEvent{Type: adapter.SessionEventSignedOut, UserID: bob.UserID})
	if aliceStore.Session() == nil {
		t.Error("expected alice's session to survive bob's sign-out")
	}
}

func TestManagerEvictsOnSignOut(t *testing.T) {
	m, bus, _ := newManagerFixture()
	defer m.Close()
	ctx := context.Background()
	session := &entity.Session{UserID: uuid.New(), Email: "a@example.com"}

	first, err := m.StoreFor(ctx, session)
	if err != nil {
		t.Fatalf("StoreFor failed: %v", err)
	}

	bus.Publish(adapter.SessionEvent{Type: adapter.SessionEventSignedOut, UserID: session.UserID})

	if first.Session() != nil {
		t.Error("expected the evicted store signed out")
	}
	if first.Profile() != nil {
		t.Error("expected the evicted store's profile cleared")
	}

	second, err := m.StoreFor(ctx, session)
	if err != nil {
		t.Fatalf("StoreFor failed: %v", err)
	}
	if first == second {
		t.Error("expected a fresh store after sign-out eviction")
	}
}

func TestManagerDemoStoreShared(t *testing.T) {
	m, _, repos := newManagerFixture()
	defer m.Close()
	ctx := context.Background()

	first, err := m.DemoStore(ctx)
	if err != nil {
		t.Fatalf("DemoStore failed: %v", err)
	}
	second, err := m.DemoStore(ctx)
	if err != nil {
		t.Fatalf("DemoStore failed: %v", err)
	}
	if first != second {
		t.Error("expected a single shared demo store")
	}
	if !first.IsDemo() {
		t.Error("expected the demo store in demo mode")
	}
	if repos.Profiles.(*profileRepoStub).findCalls != 0 {
		t.Error("expected no remote calls for the demo store")
	}
}

func TestManagerCloseReleasesEverything(t *testing.T) {
	m, bus, _ := newManagerFixture()
	session := &entity.Session{UserID: uuid.New(), Email: "a@example.com"}

	s, err := m.StoreFor(context.Background(), session)
	if err != nil {
		t.Fatalf("StoreFor failed: %v", err)
	}

	m.Close()

	if bus.subscriberCount() != 0 {
		t.Errorf("expected all bus subscriptions released, got %d", bus.subscriberCount())
	}
	if _, err := s.AddNote(context.Background(), "x"); err == nil {
		t.Error("expected mutations to fail on a closed store")
	}
	if _, err := m.StoreFor(context.Background(), session); err == nil {
		t.Error("expected StoreFor to fail on a closed manager")
	}
}

func TestPinnedProviderFiltersEvents(t *testing.T) {
	bus := &sessionBusStub{}
	session := &entity.Session{UserID: uuid.New(), Email: "a@example.com"}
	provider := &pinnedSessionProvider{session: session, bus: bus}

	var got []*entity.Session
	unsub := provider.OnSessionChange(func(s *entity.Session) {
		got = append(got, s)
	})
	defer unsub()

	other := &entity.Session{UserID: uuid.New(), Email: "b@example.com"}
	bus.Publish(adapter.SessionEvent{Type: adapter.SessionEventSignedIn, UserID: other.UserID, Session: other})
	bus.Publish(adapter.SessionEvent{Type: adapter.SessionEventTokenRefreshed, UserID: session.UserID, Session: session})
	bus.Publish(adapter.SessionEvent{Type: adapter.SessionEventSignedOut, UserID: session.UserID})

	if len(got) != 2 {
		t.Fatalf("expected 2 delivered events, got %d", len(got))
	}
	if got[0] == nil || got[0].UserID != session.UserID {
		t.Error("expected the refresh event's session")
	}
	if got[1] != nil {
		t.Error("expected a nil session for the sign-out event")
	}
}
