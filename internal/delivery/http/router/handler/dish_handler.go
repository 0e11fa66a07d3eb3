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

// DishHandler holds dependencies for dish catalog and comment handlers.
type DishHandler struct {
	dishUC usecase.DishUsecase
	logger *slog.Logger
}

// NewDishHandler is the constructor for DishHandler, injected by Fx.
func NewDishHandler(dishUC usecase.DishUsecase, logger *slog.Logger) *DishHandler {
	return &DishHandler{dishUC: dishUC, logger: logger}
}

type dishRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Label       string `json:"label"`
	Price       int64  `json:"price" validate:"gte=0"`
	Featured    bool   `json:"featured"`
}

type addCommentRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

type updateCommentRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (r *dishRequest) toInput() *usecase.DishInput {
	return &usecase.DishInput{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
		Label:       r.Label,
		Price:       r.Price,
		Featured:    r.Featured,
	}
}

// ListDishes returns the whole catalog.
func (h *DishHandler) ListDishes(c echo.Context) error {
	dishes, err := h.dishUC.ListDishes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes, "")
}

// GetDish returns one dish.
func (h *DishHandler) GetDish(c echo.Context) error {
	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}

	dish, err := h.dishUC.GetDish(c.Request().Context(), dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "")
}

// CreateDish adds a dish to the catalog.
func (h *DishHandler) CreateDish(c echo.Context) error {
	var req dishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dish, err := h.dishUC.CreateDish(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, dish, "Dish created")
}

// UpdateDish replaces a dish's writable fields.
func (h *DishHandler) UpdateDish(c echo.Context) error {
	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}

	var req dishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dish, err := h.dishUC.UpdateDish(c.Request().Context(), dishID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "Dish updated")
}

// DeleteDish removes a dish.
func (h *DishHandler) DeleteDish(c echo.Context) error {
	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}

	if err := h.dishUC.DeleteDish(c.Request().Context(), dishID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dish deleted")
}

// DeleteAllDishes empties the catalog.
func (h *DishHandler) DeleteAllDishes(c echo.Context) error {
	if err := h.dishUC.DeleteAllDishes(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All dishes deleted")
}

// ListComments returns a dish's comments.
func (h *DishHandler) ListComments(c echo.Context) error {
	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}

	comments, err := h.dishUC.ListComments(c.Request().Context(), dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "")
}

// GetComment returns one comment of a dish.
func (h *DishHandler) GetComment(c echo.Context) error {
	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return err
	}

	comment, err := h.dishUC.GetComment(c.Request().Context(), dishID, commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "")
}

// AddComment posts a comment as the authenticated user.
func (h *DishHandler) AddComment(c echo.Context) error {
	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrNotAuthenticated
	}

	comment, err := h.dishUC.AddComment(c.Request().Context(), actor, dishID, &usecase.AddCommentInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added")
}

// UpdateComment edits the authenticated user's own comment.
func (h *DishHandler) UpdateComment(c echo.Context) error {
	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrNotAuthenticated
	}

	comment, err := h.dishUC.UpdateComment(c.Request().Context(), actor, dishID, commentID, &usecase.UpdateCommentInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment updated")
}

// DeleteComment removes the authenticated user's own comment.
func (h *DishHandler) DeleteComment(c echo.Context) error {
	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return err
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrNotAuthenticated
	}

	if err := h.dishUC.DeleteComment(c.Request().Context(), actor, dishID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted")
}

// ClearComments removes every comment on a dish.
func (h *DishHandler) ClearComments(c echo.Context) error {
	dishID, err := parseIDParam(c, "dishId")
	if err != nil {
		return err
	}

	if err := h.dishUC.ClearComments(c.Request().Context(), dishID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All comments deleted")
}

// parseIDParam parses a uuid path parameter. Malformed ids are client errors,
// distinct from valid ids that point at nothing.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}
