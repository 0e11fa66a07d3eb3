package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"confusion/internal/delivery/http/middleware"
	"confusion/internal/delivery/http/response"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/usecase"
)

// FavoriteHandler holds dependencies for favorite list handlers. Every route
// here runs behind authentication; the acting user is always taken from the
// context, never from the request.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(favoriteUC usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: favoriteUC, logger: logger}
}

type addFavoritesRequest struct {
	DishIDs []uuid.UUID `json:"dishes" validate:"required,min=1"`
}

// GetFavorites returns the acting user's favorites. A user who never
// favorited anything gets an explicit null list rather than an empty one.
func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrNotAuthenticated
	}

	output, err := h.favoriteUC.GetFavorites(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Exists {
		return response.Success(c, http.StatusOK, nil, "You have no favorites")
	}

	return response.Success(c, http.StatusOK, output.List, "")
}

// CheckFavorite reports whether a single dish is in the acting user's
// favorites, alongside the list itself when one exists.
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrNotAuthenticated
	}

	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}

	output, err := h.favoriteUC.GetFavorites(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	exists := output.Exists && output.List.Contains(dishID)

	return response.Success(c, http.StatusOK, map[string]any{
		"exists":    exists,
		"favorites": output.List,
	}, "")
}

// AddFavorite adds a single dish to the acting user's favorites.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrNotAuthenticated
	}

	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}

	list, err := h.favoriteUC.AddFavorite(c.Request().Context(), actor.ID, dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list, "Favorite added")
}

// AddFavorites merges a batch of dishes into the acting user's favorites.
func (h *FavoriteHandler) AddFavorites(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrNotAuthenticated
	}

	var req addFavoritesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorites input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	list, err := h.favoriteUC.AddFavorites(c.Request().Context(), actor.ID, req.DishIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list, "Favorites updated")
}

// RemoveFavorite removes a single dish from the acting user's favorites.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrNotAuthenticated
	}

	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}

	list, err := h.favoriteUC.RemoveFavorite(c.Request().Context(), actor.ID, dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list, "Favorite removed")
}

// ClearFavorites deletes the acting user's favorite list.
func (h *FavoriteHandler) ClearFavorites(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrNotAuthenticated
	}

	if err := h.favoriteUC.ClearFavorites(c.Request().Context(), actor.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorites cleared")
}
