// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "confusion/internal/delivery/context"
	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/domain/repository"
	"confusion/internal/domain/service"
	"confusion/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new local account. The username doubles as the local
// credential's provider-specific id, so a second signup under the same name
// fails before any user row is written.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("username", input.Username))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeLocal, input.Username)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during signup")
		}

		newUser := &entity.User{
			Username:  input.Username,
			FirstName: input.FirstName,
			LastName:  input.LastName,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeLocal,
			ProviderUserID: input.Username,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during signup")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", registeredUser.ID))

	return &usecase.SignupOutput{User: registeredUser}, nil
}

// VerifyBasic checks a username/password pair against the stored local
// credential. An account provisioned through an external provider has no
// local credential row and therefore fails the unknown-user check.
func (srv *userService) VerifyBasic(ctx context.Context, username, password string) (*entity.User, error) {
	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeLocal, username)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown username", slog.String("username", username))

			return nil, domainerrors.ErrUnknownUser
		}

		return nil, errors.Wrap(err, "failed to find local credential")
	}

	if !srv.hasher.Check(password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for credential")
	}

	return user, nil
}

// Login verifies a local credential and issues a bearer token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.VerifyBasic(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// CheckToken verifies a bearer token and confirms its subject still exists.
// A token that verifies cryptographically but points at a deleted account is
// rejected the same way an invalid token is.
func (srv *userService) CheckToken(ctx context.Context, tokenString string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(tokenString)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenMalformed.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenUserGone
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user, nil
}

// GoogleLogin exchanges a Google-issued token for a local account and issues
// a bearer token. The account is provisioned on first sight; later logins
// reuse it without touching the stored profile, and no local password is
// ever created for it.
func (srv *userService) GoogleLogin(ctx context.Context, accessToken string) (*usecase.LoginOutput, error) {
	profile, err := srv.googleAuthService.Exchange(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Warn("Google token exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthUnreachable.WrapMessage(err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, srv.googleAuthService.Provider(), profile.ID)
		if err == nil {
			user, err = userRepo.FindByID(ctx, authRecord.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to load user for google credential")
			}

			return nil
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find google credential")
		}

		newUser := &entity.User{
			Username:  googleUsername(profile),
			FirstName: profile.GivenName,
			LastName:  profile.FamilyName,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to provision google user")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       srv.googleAuthService.Provider(),
			ProviderUserID: profile.ID,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to link google credential")
		}

		srv.log(ctx).Info("Provisioned user from google profile", slog.Any("userID", newUser.ID))
		user = newUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// ListUsers returns every registered account.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// googleUsername derives a stable, unique login name for a provisioned
// account. The email is preferred when Google supplies one; the subject id
// fallback cannot collide because it is unique per Google account.
func googleUsername(profile *service.OAuthProfile) string {
	if profile.Email != "" {
		return profile.Email
	}

	return "google-" + profile.ID
}
