package adapter

import (
	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// SessionEventType enumerates the transitions carried on the session stream.
type SessionEventType string

const (
	SessionEventSignedIn         SessionEventType = "signed_in"
	SessionEventTokenRefreshed   SessionEventType = "token_refreshed"
	SessionEventPasswordRecovery SessionEventType = "password_recovery"
	SessionEventSignedOut        SessionEventType = "signed_out"
)

// SessionEvent is one transition on the session change stream. Session is
// nil for signed_out events.
type SessionEvent struct {
	Type    SessionEventType
	UserID  uuid.UUID
	Session *entity.Session
}

// SessionBus is the process-wide session change stream. Auth flows publish
// transitions; store managers and per-store providers subscribe.
type SessionBus interface {
	// Publish delivers event to every subscriber.
	Publish(event SessionEvent)

	// Subscribe registers fn for subsequent events and returns an
	// unsubscribe function that is safe to call more than once.
	Subscribe(fn func(SessionEvent)) (unsubscribe func())
}
