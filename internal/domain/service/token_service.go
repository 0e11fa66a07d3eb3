package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sentinel errors reported by Verify. Wrapped implementations preserve them
// for errors.Is so callers can translate without knowing the token library.
var (
	// ErrTokenMalformed means the structure or signature did not verify.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenExpired means the token verified but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims defines the custom claims carried by a bearer token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are self-contained and stateless: they embed the user id and an
// expiry a fixed interval from issuance, and are valid only while the
// signature verifies under the current signing key. Revocation is not
// supported short of rotating that key.
type TokenService interface {
	// Issue creates a signed token for the given user.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks a token's structure, signature and expiry and returns its claims.
	Verify(tokenString string) (*Claims, error)

	// TTL returns the configured validity interval of issued tokens.
	TTL() time.Duration
}
