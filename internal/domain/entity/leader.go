// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Leader is a member of the restaurant leadership shown on the about page.
type Leader struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the leader.
	Name        string    `json:"name"`        // Full name.
	Image       string    `json:"image"`       // Path or URL of the portrait.
	Designation string    `json:"designation"` // Role title, e.g. "Executive Chef".
	Abbr        string    `json:"abbr"`        // Abbreviated title.
	Description string    `json:"description"` // Short biography.
	Featured    bool      `json:"featured"`    // Whether the leader is featured.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the record was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
