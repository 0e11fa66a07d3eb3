// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"confusion/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for favorites persistence.
var (
	// ErrFavoritesNotFound is returned when a user has no favorite list record at all.
	ErrFavoritesNotFound = errors.New("favorite list not found")
	// ErrFavoriteEntryNotFound is returned when a dish is not present in an existing list.
	ErrFavoriteEntryNotFound = errors.New("favorite entry not found")
	// ErrFavoriteEntryExists is returned by the conditional insert when the
	// dish is already in the list. The uniqueness check lives at the store
	// layer so two concurrent adds cannot both pass it.
	ErrFavoriteEntryExists = errors.New("favorite entry already exists")
)

// FavoriteRepository defines the operations for per-user favorite lists.
type FavoriteRepository interface {
	// FindByUserID retrieves a user's favorite list with dishes hydrated.
	// A user that never favorited anything yields ErrFavoritesNotFound,
	// which is distinct from an existing list that happens to be empty.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.FavoriteList, error)

	// CreateList persists a new, empty favorite list for a user.
	CreateList(ctx context.Context, list *entity.FavoriteList) error

	// LockList acquires a row lock on the user's list for the duration of the
	// surrounding transaction, serializing concurrent mutations per user.
	LockList(ctx context.Context, listID uuid.UUID) error

	// AddEntry conditionally inserts a dish reference. The insert is atomic:
	// if the reference is already present it returns ErrFavoriteEntryExists
	// and leaves the list unchanged.
	AddEntry(ctx context.Context, listID, dishID uuid.UUID) error

	// RemoveEntry removes a dish reference, or returns ErrFavoriteEntryNotFound.
	RemoveEntry(ctx context.Context, listID, dishID uuid.UUID) error

	// DeleteList removes the whole list record and its entries.
	DeleteList(ctx context.Context, listID uuid.UUID) error
}
