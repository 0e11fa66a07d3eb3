// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Promotion is a time-limited offer shown on the landing page.
type Promotion struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the promotion.
	Name        string    `json:"name"`        // Unique display name.
	Image       string    `json:"image"`       // Path or URL of the promotion image.
	Label       string    `json:"label"`       // Optional badge label.
	Price       int64     `json:"price"`       // Price in cents.
	Featured    bool      `json:"featured"`    // Whether the promotion is currently featured.
	Description string    `json:"description"` // Promotion text.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the promotion was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
