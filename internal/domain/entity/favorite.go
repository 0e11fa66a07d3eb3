// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// FavoriteList is the per-user deduplicated set of favorite dishes. It is
// created lazily on the first add; an empty list is a valid terminal state
// and is distinct from the list never having existed.
type FavoriteList struct {
	ID        uuid.UUID   `json:"id"`         // The unique identifier for the list record.
	UserID    uuid.UUID   `json:"user_id"`    // The owning user. One list per user.
	DishIDs   []uuid.UUID `json:"dish_ids"`   // Dish references, insertion order, no duplicates.
	Dishes    []*Dish     `json:"dishes"`     // Hydrated dishes, populated on reads.
	CreatedAt time.Time   `json:"created_at"` // Timestamp of when the list was first created.
	UpdatedAt time.Time   `json:"updated_at"` // Timestamp of the last mutation.
}

// Contains reports whether the dish is already in the list.
func (f *FavoriteList) Contains(dishID uuid.UUID) bool {
	return slices.Contains(f.DishIDs, dishID)
}
