package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"confusion/config"
	"confusion/internal/domain/service"
)

func newTestTokenConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		SecretKey: "test_secret_key_very_long_for_testing",
		Auth: &config.AuthConfig{
			TokenTTL: ttl,
		},
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.Issue(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Verify(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(-time.Minute))
	assert.NoError(t, err)

	token, err := jwtService.Issue(uuid.New())
	assert.NoError(t, err)

	claims, err := jwtService.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	assert.NoError(t, err)

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	assert.NoError(t, err)

	otherService, err := NewJWTService(&config.Config{
		SecretKey: "a_completely_different_secret_key",
		Auth:      &config.AuthConfig{TokenTTL: time.Hour},
	})
	assert.NoError(t, err)

	token, err := otherService.Issue(uuid.New())
	assert.NoError(t, err)

	claims, err := jwtService.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{TokenTTL: time.Hour},
	})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	assert.NoError(t, err)

	assert.Equal(t, time.Hour, jwtService.TTL())
}
