package adapter

import (
	"context"

	"github.com/planify/backend/internal/domain/entity"
)

// SessionProvider supplies the current session and a stream of session
// changes (sign-in, sign-out, token refresh, password recovery). A nil
// session in either path means no user is signed in; absence is not an
// error.
type SessionProvider interface {
	// CurrentSession returns the session as of now, or nil.
	CurrentSession(ctx context.Context) (*entity.Session, error)

	// OnSessionChange registers fn for every subsequent session change and
	// returns an unsubscribe function. The unsubscribe function is safe to
	// call more than once.
	OnSessionChange(fn func(*entity.Session)) (unsubscribe func())
}
