// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"confusion/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for dish persistence.
var (
	// ErrDishNotFound is returned when a dish is not found.
	ErrDishNotFound = errors.New("dish not found")
	// ErrCommentNotFound is returned when a comment is not found on a dish.
	ErrCommentNotFound = errors.New("comment not found")
)

// DishRepository defines the standard operations for dish persistence,
// including the nested comment collection. Comments are index-addressed rows
// rather than an embedded array, so removal is remove-by-id instead of a
// read-modify-write of the whole parent.
type DishRepository interface {
	// FindByID retrieves a dish by id with its comments and comment authors hydrated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)

	// List retrieves all dishes with comments and comment authors hydrated.
	List(ctx context.Context) ([]*entity.Dish, error)

	// Create persists a new dish.
	Create(ctx context.Context, dish *entity.Dish) error

	// Update modifies the dish's own fields. Comments are untouched.
	Update(ctx context.Context, dish *entity.Dish) error

	// Delete removes a dish and its comments.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every dish.
	DeleteAll(ctx context.Context) error

	// AddComment appends a comment to a dish's ordered list.
	AddComment(ctx context.Context, comment *entity.Comment) error

	// FindComment retrieves a single comment scoped to a dish.
	FindComment(ctx context.Context, dishID, commentID uuid.UUID) (*entity.Comment, error)

	// UpdateComment persists changes to an existing comment.
	UpdateComment(ctx context.Context, comment *entity.Comment) error

	// DeleteComment removes exactly one comment from a dish.
	DeleteComment(ctx context.Context, dishID, commentID uuid.UUID) error

	// DeleteComments removes every comment of a dish, leaving the dish itself.
	DeleteComments(ctx context.Context, dishID uuid.UUID) error
}
