package usecase

import (
	"context"

	"github.com/google/uuid"

	"confusion/internal/domain/entity"
)

// FavoritesOutput distinguishes "no list record" from "an existing, possibly
// empty list". The two states render differently to clients.
type FavoritesOutput struct {
	Exists bool
	List   *entity.FavoriteList
}

// FavoriteUsecase defines the interface for per-user favorite list operations.
// Every operation is implicitly scoped to the acting user; one user's
// favorites are invisible to another's requests.
type FavoriteUsecase interface {
	// GetFavorites returns the user's list, or a non-existing result if the
	// user never favorited anything.
	GetFavorites(ctx context.Context, userID uuid.UUID) (*FavoritesOutput, error)

	// AddFavorite adds one dish to the user's list, creating the list on
	// first use. Adding a dish already present is a conflict.
	AddFavorite(ctx context.Context, userID, dishID uuid.UUID) (*entity.FavoriteList, error)

	// AddFavorites merges a batch of dishes into the user's list. Dishes
	// already present are skipped silently; the operation is idempotent.
	AddFavorites(ctx context.Context, userID uuid.UUID, dishIDs []uuid.UUID) (*entity.FavoriteList, error)

	// RemoveFavorite removes one dish from the user's list.
	RemoveFavorite(ctx context.Context, userID, dishID uuid.UUID) (*entity.FavoriteList, error)

	// ClearFavorites deletes the user's list record entirely.
	ClearFavorites(ctx context.Context, userID uuid.UUID) error
}
