package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/domain/repository"
	"confusion/internal/domain/service"
	mockRepo "confusion/internal/mocks/repository"
	mockSvc "confusion/internal/mocks/service"
	"confusion/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service           usecase.UserUsecase
	txManager         *mockRepo.MockTransactionManager
	userRepo          *mockRepo.MockUserRepository
	authRepo          *mockRepo.MockAuthRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		AuthRepo:          authRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		Logger:            newDiscardLogger(),
	})

	return userServiceFixtures{
		service:           svc,
		txManager:         txManager,
		userRepo:          userRepo,
		authRepo:          authRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username:  "testuser",
		Password:  "Password123!",
		FirstName: "Test",
		LastName:  "User",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeLocal, input.Username).
				Return(nil, repository.ErrAuthNotFound)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, entity.ProviderTypeLocal, auth.Provider)
					assert.Equal(t, input.Username, auth.ProviderUserID)
					assert.Equal(t, "hashed_password", auth.PasswordHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.False(t, output.User.Admin)
}

func TestUserService_Signup_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "testuser",
		Password: "Password123!",
	}

	existing := &entity.Authentication{
		UserID:         uuid.New(),
		Provider:       entity.ProviderTypeLocal,
		ProviderUserID: input.Username,
		PasswordHash:   "hashed",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeLocal, input.Username).
				Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered"))

	output, err := fx.service.Signup(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_VerifyBasic_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeLocal, "nobody").
		Return(nil, repository.ErrAuthNotFound)

	user, err := fx.service.VerifyBasic(ctx, "nobody", "whatever")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownUser))
}

func TestUserService_VerifyBasic_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	authRecord := &entity.Authentication{
		UserID:         uuid.New(),
		Provider:       entity.ProviderTypeLocal,
		ProviderUserID: "testuser",
		PasswordHash:   "hashed",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeLocal, "testuser").
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check("wrong", authRecord.PasswordHash).Return(false)

	user, err := fx.service.VerifyBasic(ctx, "testuser", "wrong")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeLocal,
		ProviderUserID: "testuser",
		PasswordHash:   "hashed",
	}
	account := &entity.User{ID: userID, Username: "testuser"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeLocal, "testuser").
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check("Password123!", authRecord.PasswordHash).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(account, nil)
	fx.tokenService.EXPECT().Issue(userID).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "testuser", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, account, output.User)
}

func TestUserService_CheckToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := &entity.User{ID: userID, Username: "testuser"}

	fx.tokenService.EXPECT().Verify("valid-token").Return(&service.Claims{UserID: userID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(account, nil)

	user, err := fx.service.CheckToken(ctx, "valid-token")

	require.NoError(t, err)
	assert.Equal(t, account, user)
}

func TestUserService_CheckToken_Expired(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		Verify("stale-token").
		Return(nil, errors.Wrap(service.ErrTokenExpired, "token is expired"))

	user, err := fx.service.CheckToken(ctx, "stale-token")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestUserService_CheckToken_Malformed(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		Verify("garbage").
		Return(nil, errors.Wrap(service.ErrTokenMalformed, "failed to parse token structure"))

	user, err := fx.service.CheckToken(ctx, "garbage")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestUserService_CheckToken_SubjectGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().Verify("orphan-token").Return(&service.Claims{UserID: userID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CheckToken(ctx, "orphan-token")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenUserGone))
}

func TestUserService_GoogleLogin_ProvisionsOnFirstSight(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	profile := &service.OAuthProfile{
		ID:         "google-sub-123",
		GivenName:  "Test",
		FamilyName: "User",
		Email:      "test@example.com",
		Provider:   entity.ProviderTypeGoogle,
	}

	fx.googleAuthService.EXPECT().Exchange(ctx, "access-token").Return(profile, nil)
	fx.googleAuthService.EXPECT().Provider().Return(entity.ProviderTypeGoogle)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGoogle, profile.ID).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "test@example.com", user.Username)
					assert.Equal(t, "Test", user.FirstName)
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, profile.ID, auth.ProviderUserID)
					assert.Empty(t, auth.PasswordHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("uuid.UUID")).Return("signed-token", nil)

	output, err := fx.service.GoogleLogin(ctx, "access-token")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "test@example.com", output.User.Username)
}

func TestUserService_GoogleLogin_ReusesExistingAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &service.OAuthProfile{
		ID:       "google-sub-123",
		Email:    "renamed@example.com",
		Provider: entity.ProviderTypeGoogle,
	}
	account := &entity.User{ID: userID, Username: "test@example.com", FirstName: "Original"}

	fx.googleAuthService.EXPECT().Exchange(ctx, "access-token").Return(profile, nil)
	fx.googleAuthService.EXPECT().Provider().Return(entity.ProviderTypeGoogle)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGoogle, profile.ID).
				Return(&entity.Authentication{UserID: userID, Provider: entity.ProviderTypeGoogle, ProviderUserID: profile.ID}, nil)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(account, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().Issue(userID).Return("signed-token", nil)

	output, err := fx.service.GoogleLogin(ctx, "access-token")

	require.NoError(t, err)
	// The stored profile is never overwritten by a later exchange.
	assert.Equal(t, "Original", output.User.FirstName)
	assert.Equal(t, "test@example.com", output.User.Username)
}

func TestUserService_GoogleLogin_ExchangeFails(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.googleAuthService.EXPECT().
		Exchange(ctx, "bad-token").
		Return(nil, errors.New("provider rejected the token"))

	output, err := fx.service.GoogleLogin(ctx, "bad-token")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthUnreachable))
}

func TestGoogleUsername_FallbackWithoutEmail(t *testing.T) {
	profile := &service.OAuthProfile{ID: "sub-42"}

	assert.Equal(t, "google-sub-42", googleUsername(profile))
}
