package usecase

import (
	"context"

	"github.com/google/uuid"

	"confusion/internal/domain/entity"
)

// SessionUsecase manages server-side login sessions. The client holds only an
// opaque session id in a cookie; everything else lives in the store, so
// ending a session revokes it immediately.
type SessionUsecase interface {
	// Begin creates a new session for the user and returns it.
	Begin(ctx context.Context, userID uuid.UUID) (*entity.Session, error)

	// Resolve maps an opaque session id back to the user it belongs to.
	Resolve(ctx context.Context, sessionID uuid.UUID) (*entity.User, error)

	// End destroys a session. Ending an unknown session is not an error.
	End(ctx context.Context, sessionID uuid.UUID) error

	// PurgeExpired removes sessions past their expiry and reports how many.
	PurgeExpired(ctx context.Context) (int, error)
}
