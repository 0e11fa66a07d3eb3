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
	mockRepo "confusion/internal/mocks/repository"
	"confusion/internal/usecase"
)

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	txManager    *mockRepo.MockTransactionManager
	favoriteRepo *mockRepo.MockFavoriteRepository
	dishRepo     *mockRepo.MockDishRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	dishRepo := mockRepo.NewMockDishRepository(t)

	svc := NewFavoriteService(FavoriteServiceParams{
		TxManager:    txManager,
		FavoriteRepo: favoriteRepo,
		DishRepo:     dishRepo,
		Logger:       newDiscardLogger(),
	})

	return favoriteServiceFixtures{
		service:      svc,
		txManager:    txManager,
		favoriteRepo: favoriteRepo,
		dishRepo:     dishRepo,
	}
}

func TestFavoriteService_GetFavorites_NoRecord(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrFavoritesNotFound)

	output, err := fx.service.GetFavorites(ctx, userID)

	require.NoError(t, err)
	assert.False(t, output.Exists)
	assert.Nil(t, output.List)
}

func TestFavoriteService_AddFavorite_CreatesListOnFirstUse(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	dishID := uuid.New()
	listID := uuid.New()

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)

			mockFavoriteRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(nil, repository.ErrFavoritesNotFound)
			mockFavoriteRepo.EXPECT().
				CreateList(ctx, mock.AnythingOfType("*entity.FavoriteList")).
				Run(func(ctx context.Context, list *entity.FavoriteList) {
					assert.Equal(t, userID, list.UserID)
					list.ID = listID
				}).
				Return(nil)
			mockFavoriteRepo.EXPECT().LockList(ctx, listID).Return(nil)
			mockFavoriteRepo.EXPECT().AddEntry(ctx, listID, dishID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.favoriteRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.FavoriteList{ID: listID, UserID: userID, DishIDs: []uuid.UUID{dishID}}, nil)

	list, err := fx.service.AddFavorite(ctx, userID, dishID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{dishID}, list.DishIDs)
}

func TestFavoriteService_AddFavorite_DuplicateIsConflict(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	dishID := uuid.New()
	listID := uuid.New()

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)

			mockFavoriteRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.FavoriteList{ID: listID, UserID: userID, DishIDs: []uuid.UUID{dishID}}, nil)
			mockFavoriteRepo.EXPECT().LockList(ctx, listID).Return(nil)
			mockFavoriteRepo.EXPECT().
				AddEntry(ctx, listID, dishID).
				Return(repository.ErrFavoriteEntryExists)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrAlreadyFavorited)

	list, err := fx.service.AddFavorite(ctx, userID, dishID)

	assert.Nil(t, list)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyFavorited))
}

func TestFavoriteService_AddFavorite_UnknownDish(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	dishID := uuid.New()

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(nil, repository.ErrDishNotFound)

	list, err := fx.service.AddFavorite(ctx, userID, dishID)

	assert.Nil(t, list)
	assert.True(t, errors.Is(err, domainerrors.ErrDishNotFound))
}

func TestFavoriteService_AddFavorites_SkipsDuplicates(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	dishA := uuid.New()
	dishB := uuid.New()
	listID := uuid.New()

	fx.dishRepo.EXPECT().FindByID(ctx, dishA).Return(testDish(dishA), nil)
	fx.dishRepo.EXPECT().FindByID(ctx, dishB).Return(testDish(dishB), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)

			mockFavoriteRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.FavoriteList{ID: listID, UserID: userID, DishIDs: []uuid.UUID{dishA}}, nil)
			mockFavoriteRepo.EXPECT().LockList(ctx, listID).Return(nil)
			mockFavoriteRepo.EXPECT().
				AddEntry(ctx, listID, dishA).
				Return(repository.ErrFavoriteEntryExists)
			mockFavoriteRepo.EXPECT().AddEntry(ctx, listID, dishB).Return(nil)

			err := fn(mockFactory)
			assert.NoError(t, err)
		}).
		Return(nil)

	fx.favoriteRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.FavoriteList{ID: listID, UserID: userID, DishIDs: []uuid.UUID{dishA, dishB}}, nil)

	list, err := fx.service.AddFavorites(ctx, userID, []uuid.UUID{dishA, dishB})

	require.NoError(t, err)
	assert.Len(t, list.DishIDs, 2)
}

func TestFavoriteService_RemoveFavorite_EntryMissing(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	dishID := uuid.New()
	listID := uuid.New()

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)

			mockFavoriteRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.FavoriteList{ID: listID, UserID: userID}, nil)
			mockFavoriteRepo.EXPECT().LockList(ctx, listID).Return(nil)
			mockFavoriteRepo.EXPECT().
				RemoveEntry(ctx, listID, dishID).
				Return(repository.ErrFavoriteEntryNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrFavoriteEntryNotFound)

	list, err := fx.service.RemoveFavorite(ctx, userID, dishID)

	assert.Nil(t, list)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteEntryNotFound))
}

func TestFavoriteService_ClearFavorites_NoRecordIsNotFound(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)

			mockFavoriteRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(nil, repository.ErrFavoritesNotFound)

			err := fn(mockFactory)
			assert.ErrorIs(t, err, domainerrors.ErrFavoritesNotFound)
		}).
		Return(domainerrors.ErrFavoritesNotFound)

	err := fx.service.ClearFavorites(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrFavoritesNotFound)
}

func TestFavoriteService_ClearFavorites_DeletesList(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	listID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)

			mockFavoriteRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.FavoriteList{ID: listID, UserID: userID}, nil)
			mockFavoriteRepo.EXPECT().DeleteList(ctx, listID).Return(nil)

			err := fn(mockFactory)
			assert.NoError(t, err)
		}).
		Return(nil)

	require.NoError(t, fx.service.ClearFavorites(ctx, userID))
}
