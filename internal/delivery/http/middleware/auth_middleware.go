package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"confusion/config"
	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/usecase"
)

// ContextKeyUser is the echo context key the authenticated user is stored under.
const ContextKeyUser = "user"

// AuthMiddleware authenticates requests and gates routes on the result. Two
// principals are accepted: a bearer token in the Authorization header, or an
// opaque session id in a cookie. The bearer path wins when both are present.
type AuthMiddleware struct {
	userUC     usecase.UserUsecase
	sessionUC  usecase.SessionUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase, sessionUC usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		userUC:     userUC,
		sessionUC:  sessionUC,
		cookieName: cfg.Auth.SessionCookie,
	}
}

// Authenticate resolves the request's principal and stores the account on the
// context. Without any usable credential the request is refused before the
// handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if tokenString, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			user, err := m.userUC.CheckToken(ctx, tokenString)
			if err != nil {
				return err
			}

			c.Set(ContextKeyUser, user)

			return next(c)
		}

		if cookie, err := c.Cookie(m.cookieName); err == nil {
			sessionID, err := uuid.Parse(cookie.Value)
			if err != nil {
				return domainerrors.ErrNotLoggedIn
			}

			user, err := m.sessionUC.Resolve(ctx, sessionID)
			if err != nil {
				return err
			}

			c.Set(ContextKeyUser, user)

			return next(c)
		}

		return domainerrors.ErrNotLoggedIn
	}
}

// RequireAdmin refuses non-administrators. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return domainerrors.ErrNotAuthenticated
		}

		if !user.Admin {
			return domainerrors.ErrNotAuthorized
		}

		return next(c)
	}
}

// CurrentUser returns the authenticated account stored by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(ContextKeyUser).(*entity.User)

	return user
}

// BasicCredentials extracts a username/password pair from an Authorization
// header using the Basic scheme. Absent or malformed headers report
// ErrCredentialsMissing, which carries the Basic challenge back to the client.
func BasicCredentials(c echo.Context) (string, string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)

	encoded, ok := strings.CutPrefix(authHeader, "Basic ")
	if !ok {
		return "", "", domainerrors.ErrCredentialsMissing
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", domainerrors.ErrCredentialsMissing
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok || username == "" {
		return "", "", domainerrors.ErrCredentialsMissing
	}

	return username, password, nil
}
