// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dish is a menu item. It owns an ordered list of comments; comments are
// addressed individually by id and are removed one at a time, except for the
// admin-only bulk clear which empties the list but keeps the dish.
type Dish struct {
	ID          uuid.UUID  `json:"id"`          // The unique identifier for the dish.
	Name        string     `json:"name"`        // Unique display name.
	Description string     `json:"description"` // Menu description text.
	Image       string     `json:"image"`       // Path or URL of the dish image.
	Category    string     `json:"category"`    // Menu category, e.g. "mains".
	Label       string     `json:"label"`       // Optional badge label ("Hot", "New", ...).
	Price       int64      `json:"price"`       // Price in cents.
	Featured    bool       `json:"featured"`    // Whether the dish is featured on the landing page.
	Comments    []*Comment `json:"comments"`    // Ordered comment list, oldest first.
	CreatedAt   time.Time  `json:"created_at"`  // Timestamp of when the dish was created.
	UpdatedAt   time.Time  `json:"updated_at"`  // Timestamp of the last modification.
}

// CommentByID returns the comment with the given id, or nil.
func (d *Dish) CommentByID(id uuid.UUID) *Comment {
	for _, c := range d.Comments {
		if c.ID == id {
			return c
		}
	}

	return nil
}

// Comment is a rating and remark left on a dish. The author reference is set
// exactly once at creation from the authenticated caller and is never taken
// from a client-submitted body.
type Comment struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the comment.
	DishID    uuid.UUID `json:"dish_id"`    // The dish this comment belongs to.
	Rating    int       `json:"rating"`     // 1..5.
	Comment   string    `json:"comment"`    // The remark text.
	AuthorID  uuid.UUID `json:"author_id"`  // The identity that wrote the comment. Immutable.
	Author    *User     `json:"author"`     // Hydrated author, populated on reads.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the comment was posted.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last edit.
}

// IsAuthor reports whether the given identity wrote this comment. Editing and
// deleting are gated on this alone; administrator status is irrelevant here.
func (c *Comment) IsAuthor(userID uuid.UUID) bool {
	return c.AuthorID == userID
}
