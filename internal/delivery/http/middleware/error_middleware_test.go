package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "confusion/internal/domain/errors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_AppErrorEnvelope(t *testing.T) {
	rec := handleError(t, domainerrors.ErrDishNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "DISH_NOT_FOUND")
	assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestHandleHTTPError_CredentialFailuresCarryBasicChallenge(t *testing.T) {
	challenged := []error{
		domainerrors.ErrCredentialsMissing,
		domainerrors.ErrUnknownUser,
		domainerrors.ErrInvalidCredentials,
		domainerrors.ErrNotLoggedIn,
	}

	for _, err := range challenged {
		rec := handleError(t, err)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, `Basic realm="Restricted"`, rec.Header().Get("WWW-Authenticate"))
	}
}

func TestHandleHTTPError_ForbiddenHasNoChallenge(t *testing.T) {
	rec := handleError(t, domainerrors.ErrNotAuthorized)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestHandleHTTPError_WrappedAppErrorStillRecognized(t *testing.T) {
	rec := handleError(t, errors.Wrap(domainerrors.ErrAlreadyFavorited, "merge failed"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALREADY_FAVORITED")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "bad input"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad input")
}

func TestHandleHTTPError_UnknownErrorIsOpaque(t *testing.T) {
	rec := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
