// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"confusion/config"
	"confusion/internal/delivery/http/middleware"
	"confusion/internal/delivery/http/response"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/usecase"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	userUC     usecase.UserUsecase
	sessionUC  usecase.SessionUsecase
	cookieName string
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, sessionUC usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC:     userUC,
		sessionUC:  sessionUC,
		cookieName: cfg.Auth.SessionCookie,
		logger:     logger,
	}
}

type signupRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=100"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles the local account registration request.
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.userUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Registration successful")
}

// Login verifies a credential, starts a server-side session, and returns a
// bearer token. Credentials come from the JSON body, or from a Basic
// Authorization header when the body carries none.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if req.Username == "" {
		username, password, err := middleware.BasicCredentials(c)
		if err != nil {
			return err
		}
		req.Username, req.Password = username, password
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session, err := h.sessionUC.Begin(c.Request().Context(), output.User.ID)
	if err != nil {
		return errors.WithStack(err)
	}
	h.setSessionCookie(c, session.ID.String(), session.ExpiresAt)

	return response.Success(c, http.StatusOK, output, "You are successfully logged in")
}

// Logout ends the server-side session named by the cookie and expires the
// cookie. Without a session cookie there is nothing to log out of.
func (h *UserHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil {
		return domainerrors.ErrNotLoggedIn
	}

	sessionID, err := uuid.Parse(cookie.Value)
	if err == nil {
		if err := h.sessionUC.End(c.Request().Context(), sessionID); err != nil {
			return errors.WithStack(err)
		}
	}

	h.setSessionCookie(c, "", time.Unix(0, 0))

	return response.Success(c, http.StatusOK, nil, "You are successfully logged out")
}

// CheckToken reports whether the presented bearer token is still valid and
// who it belongs to.
func (h *UserHandler) CheckToken(c echo.Context) error {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return domainerrors.ErrTokenMalformed
	}

	user, err := h.userUC.CheckToken(c.Request().Context(), tokenString)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Token is valid")
}

// GoogleToken exchanges a Google-issued token for a local login. The token
// arrives as a query parameter or a Bearer header; the account is provisioned
// on first sight.
func (h *UserHandler) GoogleToken(c echo.Context) error {
	accessToken := c.QueryParam("access_token")
	if accessToken == "" {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		accessToken, _ = strings.CutPrefix(authHeader, "Bearer ")
	}
	if accessToken == "" {
		return domainerrors.ErrOAuthUnreachable.WrapMessage("no access token supplied")
	}

	output, err := h.userUC.GoogleLogin(c.Request().Context(), accessToken)
	if err != nil {
		return errors.WithStack(err)
	}

	session, err := h.sessionUC.Begin(c.Request().Context(), output.User.ID)
	if err != nil {
		return errors.WithStack(err)
	}
	h.setSessionCookie(c, session.ID.String(), session.ExpiresAt)

	return response.Success(c, http.StatusOK, output, "You are successfully logged in")
}

// ListUsers returns all registered accounts. Route-level authorization
// restricts this to administrators.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

func (h *UserHandler) setSessionCookie(c echo.Context, value string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
