package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/domain/repository"
	mockRepo "confusion/internal/mocks/repository"
	"confusion/internal/usecase"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	sessionRepo *mockRepo.MockSessionRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewSessionService(SessionServiceParams{
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
		Config:      newTestConfig(time.Hour),
		Logger:      newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:     svc,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

func TestSessionService_Begin_SetsExpiryFromConfig(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			session.ID = uuid.New()
		}).
		Return(nil)

	before := time.Now()
	session, err := fx.service.Begin(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.WithinDuration(t, before.Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func TestSessionService_Resolve_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	account := &entity.User{ID: userID, Username: "testuser"}

	fx.sessionRepo.EXPECT().
		FindSessionByID(ctx, sessionID).
		Return(&entity.Session{ID: sessionID, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(account, nil)

	user, err := fx.service.Resolve(ctx, sessionID)

	require.NoError(t, err)
	assert.Equal(t, account, user)
}

func TestSessionService_Resolve_ExpiredReadsAsNotLoggedIn(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindSessionByID(ctx, sessionID).
		Return(nil, repository.ErrSessionExpired)

	user, err := fx.service.Resolve(ctx, sessionID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrNotLoggedIn))
}

func TestSessionService_Resolve_OrphanedReadsAsNotLoggedIn(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindSessionByID(ctx, sessionID).
		Return(&entity.Session{ID: sessionID, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Resolve(ctx, sessionID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrNotLoggedIn))
}

func TestSessionService_End_Idempotent(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().DeleteSession(ctx, sessionID).Return(nil)

	require.NoError(t, fx.service.End(ctx, sessionID))
}

func TestSessionService_PurgeExpired(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().DeleteExpiredSessions(ctx).Return(3, nil)

	purged, err := fx.service.PurgeExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, purged)
}
