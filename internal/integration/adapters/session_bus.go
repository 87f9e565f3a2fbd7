package adapters

import (
	"sync"

	"github.com/planify/backend/internal/application/adapter"
)

// sessionBus is the in-process implementation of adapter.SessionBus.
// Events are delivered synchronously on the publisher's goroutine, outside
// the bus lock so handlers may subscribe or unsubscribe reentrantly.
type sessionBus struct {
	mu       sync.Mutex
	handlers map[int]func(adapter.SessionEvent)
	next     int
}

// NewSessionBus creates a new session bus instance.
func NewSessionBus() adapter.SessionBus {
	return &sessionBus{
		handlers: make(map[int]func(adapter.SessionEvent)),
	}
}

// Publish delivers event to every subscriber.
func (b *sessionBus) Publish(event adapter.SessionEvent) {
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

// Subscribe registers fn for subsequent events and returns an unsubscribe
// function that is safe to call more than once.
func (b *sessionBus) Subscribe(fn func(adapter.SessionEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.handlers[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}
