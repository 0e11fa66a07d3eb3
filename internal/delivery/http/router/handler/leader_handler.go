package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"confusion/internal/delivery/http/response"
	"confusion/internal/usecase"
)

// LeaderHandler holds dependencies for leadership profile handlers.
type LeaderHandler struct {
	leaderUC usecase.LeaderUsecase
	logger   *slog.Logger
}

// NewLeaderHandler is the constructor for LeaderHandler, injected by Fx.
func NewLeaderHandler(leaderUC usecase.LeaderUsecase, logger *slog.Logger) *LeaderHandler {
	return &LeaderHandler{leaderUC: leaderUC, logger: logger}
}

type leaderRequest struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Designation string `json:"designation" validate:"required"`
	Abbr        string `json:"abbr"`
	Description string `json:"description" validate:"required"`
	Featured    bool   `json:"featured"`
}

func (r *leaderRequest) toInput() *usecase.LeaderInput {
	return &usecase.LeaderInput{
		Name:        r.Name,
		Image:       r.Image,
		Designation: r.Designation,
		Abbr:        r.Abbr,
		Description: r.Description,
		Featured:    r.Featured,
	}
}

func (h *LeaderHandler) ListLeaders(c echo.Context) error {
	leaders, err := h.leaderUC.ListLeaders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leaders, "")
}

func (h *LeaderHandler) GetLeader(c echo.Context) error {
	id, err := parseIDParam(c, "leaderId")
	if err != nil {
		return err
	}

	leader, err := h.leaderUC.GetLeader(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leader, "")
}

func (h *LeaderHandler) CreateLeader(c echo.Context) error {
	var req leaderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid leader input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	leader, err := h.leaderUC.CreateLeader(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, leader, "Leader created")
}

func (h *LeaderHandler) UpdateLeader(c echo.Context) error {
	id, err := parseIDParam(c, "leaderId")
	if err != nil {
		return err
	}

	var req leaderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid leader input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	leader, err := h.leaderUC.UpdateLeader(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leader, "Leader updated")
}

func (h *LeaderHandler) DeleteLeader(c echo.Context) error {
	id, err := parseIDParam(c, "leaderId")
	if err != nil {
		return err
	}

	if err := h.leaderUC.DeleteLeader(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Leader deleted")
}

func (h *LeaderHandler) DeleteAllLeaders(c echo.Context) error {
	if err := h.leaderUC.DeleteAllLeaders(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All leaders deleted")
}
