package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"confusion/internal/delivery/http/response"
	"confusion/internal/usecase"
)

// PromotionHandler holds dependencies for promotion handlers.
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
	logger      *slog.Logger
}

// NewPromotionHandler is the constructor for PromotionHandler, injected by Fx.
func NewPromotionHandler(promotionUC usecase.PromotionUsecase, logger *slog.Logger) *PromotionHandler {
	return &PromotionHandler{promotionUC: promotionUC, logger: logger}
}

type promotionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Label       string `json:"label"`
	Price       int64  `json:"price" validate:"gte=0"`
	Featured    bool   `json:"featured"`
}

func (r *promotionRequest) toInput() *usecase.PromotionInput {
	return &usecase.PromotionInput{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Label:       r.Label,
		Price:       r.Price,
		Featured:    r.Featured,
	}
}

func (h *PromotionHandler) ListPromotions(c echo.Context) error {
	promotions, err := h.promotionUC.ListPromotions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotions, "")
}

func (h *PromotionHandler) GetPromotion(c echo.Context) error {
	id, err := parseIDParam(c, "promoId")
	if err != nil {
		return err
	}

	promotion, err := h.promotionUC.GetPromotion(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotion, "")
}

func (h *PromotionHandler) CreatePromotion(c echo.Context) error {
	var req promotionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	promotion, err := h.promotionUC.CreatePromotion(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promotion, "Promotion created")
}

func (h *PromotionHandler) UpdatePromotion(c echo.Context) error {
	id, err := parseIDParam(c, "promoId")
	if err != nil {
		return err
	}

	var req promotionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	promotion, err := h.promotionUC.UpdatePromotion(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotion, "Promotion updated")
}

func (h *PromotionHandler) DeletePromotion(c echo.Context) error {
	id, err := parseIDParam(c, "promoId")
	if err != nil {
		return err
	}

	if err := h.promotionUC.DeletePromotion(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Promotion deleted")
}

func (h *PromotionHandler) DeleteAllPromotions(c echo.Context) error {
	if err := h.promotionUC.DeleteAllPromotions(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All promotions deleted")
}
