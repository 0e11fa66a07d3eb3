// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"confusion/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session record is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session record exists but is past its expiry.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the operations for server-side session records.
// The opaque session id handed to the client is only a pointer into this store.
type SessionRepository interface {
	// CreateSession persists a new session record.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByID retrieves a session by its opaque id.
	// Expired sessions are deleted on read and reported as ErrSessionExpired.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// DeleteSession removes a session record. Deleting an absent session is not an error.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredSessions removes all sessions past their expiry and reports how many.
	DeleteExpiredSessions(ctx context.Context) (int, error)
}
