package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"confusion/internal/delivery/http/response"
	domainerrors "confusion/internal/domain/errors"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// OperationNotSupported answers verbs that exist in HTTP but have no meaning
// on an endpoint, e.g. PUT on a collection.
func OperationNotSupported(c echo.Context) error {
	return domainerrors.ErrOperationNotSupported.WithDetails(
		c.Request().Method + " is not supported on " + c.Path())
}
