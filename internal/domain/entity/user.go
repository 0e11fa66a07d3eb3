// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a registered account.
// It is created on signup or on the first successful OAuth exchange and is
// never deleted by this service.
type User struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the user.
	Username  string    `json:"username"`   // The unique login name. Derived from the provider profile for OAuth-provisioned accounts.
	FirstName string    `json:"first_name"` // Optional given name.
	LastName  string    `json:"last_name"`  // Optional family name.
	Admin     bool      `json:"admin"`      // Whether the user may perform administrative operations.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification to this account.
}
