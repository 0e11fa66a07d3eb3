package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
)

func newTestContext(t *testing.T, header http.Header) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func basicHeader(username, password string) http.Header {
	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))

	return http.Header{echo.HeaderAuthorization: []string{"Basic " + encoded}}
}

func TestBasicCredentials_ParsesHeader(t *testing.T) {
	c := newTestContext(t, basicHeader("testuser", "Password123!"))

	username, password, err := BasicCredentials(c)

	require.NoError(t, err)
	assert.Equal(t, "testuser", username)
	assert.Equal(t, "Password123!", password)
}

func TestBasicCredentials_PasswordMayContainColons(t *testing.T) {
	c := newTestContext(t, basicHeader("testuser", "pa:ss:word"))

	username, password, err := BasicCredentials(c)

	require.NoError(t, err)
	assert.Equal(t, "testuser", username)
	assert.Equal(t, "pa:ss:word", password)
}

func TestBasicCredentials_MissingHeader(t *testing.T) {
	c := newTestContext(t, nil)

	_, _, err := BasicCredentials(c)

	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsMissing))
}

func TestBasicCredentials_WrongScheme(t *testing.T) {
	c := newTestContext(t, http.Header{echo.HeaderAuthorization: []string{"Bearer some-token"}})

	_, _, err := BasicCredentials(c)

	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsMissing))
}

func TestBasicCredentials_BadBase64(t *testing.T) {
	c := newTestContext(t, http.Header{echo.HeaderAuthorization: []string{"Basic !!!not-base64!!!"}})

	_, _, err := BasicCredentials(c)

	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsMissing))
}

func TestBasicCredentials_EmptyUsername(t *testing.T) {
	c := newTestContext(t, basicHeader("", "password"))

	_, _, err := BasicCredentials(c)

	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsMissing))
}

func TestRequireAdmin_RefusesWithoutPrincipal(t *testing.T) {
	m := &AuthMiddleware{}
	c := newTestContext(t, nil)

	err := m.RequireAdmin(func(echo.Context) error { return nil })(c)

	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
}

func TestRequireAdmin_RefusesNonAdmin(t *testing.T) {
	m := &AuthMiddleware{}
	c := newTestContext(t, nil)
	c.Set(ContextKeyUser, &entity.User{Username: "testuser"})

	err := m.RequireAdmin(func(echo.Context) error { return nil })(c)

	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthorized))
}

func TestRequireAdmin_PassesAdminThrough(t *testing.T) {
	m := &AuthMiddleware{}
	c := newTestContext(t, nil)
	c.Set(ContextKeyUser, &entity.User{Username: "admin", Admin: true})

	called := false
	err := m.RequireAdmin(func(echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestCurrentUser_NilWithoutAuthentication(t *testing.T) {
	c := newTestContext(t, nil)

	assert.Nil(t, CurrentUser(c))
}
