// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how a credential was established.
type ProviderType = string

const (
	// ProviderTypeLocal is a username/password credential verified locally.
	ProviderTypeLocal ProviderType = "local"
	// ProviderTypeGoogle is an identity provisioned through the Google OAuth exchange.
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication represents a single method of logging in (a credential).
// A user's username/password is one record; a linked Google account is another.
// An OAuth-provisioned account has no local record at all, which permanently
// locks it out of Basic authentication.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record.
	UserID         uuid.UUID    // Links this credential to the User it belongs to.
	Provider       ProviderType // "local" or "google".
	ProviderUserID string       // The username for local credentials, or the provider's subject id.
	PasswordHash   string       // bcrypt hash, only set when Provider is "local".
	CreatedAt      time.Time    // Timestamp of when this credential was created.
}

// Session is a server-side record binding an opaque client-held cookie value
// to a User, with expiry. The cookie on the client is only a capability
// pointer; destroying the record invalidates it.
type Session struct {
	ID        uuid.UUID // Opaque session identifier carried in the cookie.
	UserID    uuid.UUID // The authenticated user this session belongs to.
	ExpiresAt time.Time // Absolute expiry; the session resolves to nothing past this.
	CreatedAt time.Time // Timestamp of when the session began.
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
