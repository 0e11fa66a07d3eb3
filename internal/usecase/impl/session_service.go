package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"confusion/config"
	deliverycontext "confusion/internal/delivery/context"
	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/domain/repository"
	"confusion/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	UserRepo    repository.UserRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: params.SessionRepo,
		userRepo:    params.UserRepo,
		sessionTTL:  params.Config.Auth.SessionTTL,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin creates a new session for the user and returns it.
func (srv *sessionService) Begin(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	session := &entity.Session{
		UserID:    userID,
		ExpiresAt: time.Now().Add(srv.sessionTTL),
	}

	if err := srv.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Debug("Session started", slog.Any("userID", userID), slog.Any("sessionID", session.ID))

	return session, nil
}

// Resolve maps an opaque session id back to the user it belongs to. An
// unknown, expired or orphaned session all read as "not logged in"; the
// client cannot distinguish why its cookie stopped working.
func (srv *sessionService) Resolve(ctx context.Context, sessionID uuid.UUID) (*entity.User, error) {
	session, err := srv.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrNotLoggedIn
		}

		return nil, errors.Wrap(err, "failed to resolve session")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotLoggedIn
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user, nil
}

// End destroys a session. Ending an unknown session is not an error, so
// logout is idempotent.
func (srv *sessionService) End(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to end session")
	}

	srv.log(ctx).Debug("Session ended", slog.Any("sessionID", sessionID))

	return nil
}

// PurgeExpired removes sessions past their expiry and reports how many.
func (srv *sessionService) PurgeExpired(ctx context.Context) (int, error) {
	purged, err := srv.sessionRepo.DeleteExpiredSessions(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}

	if purged > 0 {
		srv.log(ctx).Info("Purged expired sessions", slog.Int("count", purged))
	}

	return purged, nil
}
