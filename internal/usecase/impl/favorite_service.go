package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "confusion/internal/delivery/context"
	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/domain/repository"
	"confusion/internal/usecase"
)

// favoriteService implements the FavoriteUsecase interface. All mutations run
// inside a transaction that locks the user's list row first, so two requests
// racing on the same list serialize instead of both observing the same
// membership state.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	dishRepo     repository.DishRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	DishRepo     repository.DishRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		dishRepo:     params.DishRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetFavorites returns the user's list, or a non-existing result if the user
// never favorited anything. The two cases render differently: no record is
// not the same as an existing, empty list.
func (srv *favoriteService) GetFavorites(ctx context.Context, userID uuid.UUID) (*usecase.FavoritesOutput, error) {
	list, err := srv.favoriteRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoritesNotFound) {
			return &usecase.FavoritesOutput{Exists: false}, nil
		}

		return nil, errors.Wrap(err, "failed to get favorites")
	}

	return &usecase.FavoritesOutput{Exists: true, List: list}, nil
}

// AddFavorite adds one dish to the user's list, creating the list on first
// use. Adding a dish already present is a conflict, even when the duplicate
// arrives from a concurrent request.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, dishID uuid.UUID) (*entity.FavoriteList, error) {
	if err := srv.checkDishExists(ctx, dishID); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.FavoriteRepo()

		list, err := srv.ensureListLocked(ctx, favoriteRepo, userID)
		if err != nil {
			return err
		}

		if err := favoriteRepo.AddEntry(ctx, list.ID, dishID); err != nil {
			if errors.Is(err, repository.ErrFavoriteEntryExists) {
				return domainerrors.ErrAlreadyFavorited
			}

			return errors.Wrap(err, "failed to add favorite")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Favorite added", slog.Any("userID", userID), slog.Any("dishID", dishID))

	return srv.favoriteRepo.FindByUserID(ctx, userID)
}

// AddFavorites merges a batch of dishes into the user's list. Dishes already
// present are skipped silently, so replaying the same batch is harmless.
func (srv *favoriteService) AddFavorites(ctx context.Context, userID uuid.UUID, dishIDs []uuid.UUID) (*entity.FavoriteList, error) {
	for _, dishID := range dishIDs {
		if err := srv.checkDishExists(ctx, dishID); err != nil {
			return nil, err
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.FavoriteRepo()

		list, err := srv.ensureListLocked(ctx, favoriteRepo, userID)
		if err != nil {
			return err
		}

		for _, dishID := range dishIDs {
			err := favoriteRepo.AddEntry(ctx, list.ID, dishID)
			if err != nil && !errors.Is(err, repository.ErrFavoriteEntryExists) {
				return errors.Wrap(err, "failed to merge favorite")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Favorites merged", slog.Any("userID", userID), slog.Int("count", len(dishIDs)))

	return srv.favoriteRepo.FindByUserID(ctx, userID)
}

// RemoveFavorite removes one dish from the user's list.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, dishID uuid.UUID) (*entity.FavoriteList, error) {
	if err := srv.checkDishExists(ctx, dishID); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.FavoriteRepo()

		list, err := favoriteRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrFavoritesNotFound) {
				return domainerrors.ErrFavoritesNotFound
			}

			return errors.Wrap(err, "failed to load favorites for removal")
		}

		if err := favoriteRepo.LockList(ctx, list.ID); err != nil {
			return errors.Wrap(err, "failed to lock favorite list")
		}

		if err := favoriteRepo.RemoveEntry(ctx, list.ID, dishID); err != nil {
			if errors.Is(err, repository.ErrFavoriteEntryNotFound) {
				return domainerrors.ErrFavoriteEntryNotFound
			}

			return errors.Wrap(err, "failed to remove favorite")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Favorite removed", slog.Any("userID", userID), slog.Any("dishID", dishID))

	return srv.favoriteRepo.FindByUserID(ctx, userID)
}

// ClearFavorites deletes the user's list record entirely. Clearing when no
// record exists is a not-found, the same as removing from an absent list.
func (srv *favoriteService) ClearFavorites(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.FavoriteRepo()

		list, err := favoriteRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrFavoritesNotFound) {
				return domainerrors.ErrFavoritesNotFound
			}

			return errors.Wrap(err, "failed to load favorites for clearing")
		}

		if err := favoriteRepo.DeleteList(ctx, list.ID); err != nil {
			return errors.Wrap(err, "failed to clear favorites")
		}

		srv.log(ctx).Info("Favorites cleared", slog.Any("userID", userID))

		return nil
	})

	return err
}

// checkDishExists translates an unknown dish into the dish-specific not
// found error before any list state is touched.
func (srv *favoriteService) checkDishExists(ctx context.Context, dishID uuid.UUID) error {
	if _, err := srv.dishRepo.FindByID(ctx, dishID); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return domainerrors.ErrDishNotFound
		}

		return errors.Wrap(err, "failed to check dish")
	}

	return nil
}

// ensureListLocked loads the user's list under a row lock, creating it first
// if the user never favorited anything. The lock is held until the
// surrounding transaction ends.
func (srv *favoriteService) ensureListLocked(ctx context.Context, favoriteRepo repository.FavoriteRepository, userID uuid.UUID) (*entity.FavoriteList, error) {
	list, err := favoriteRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrFavoritesNotFound) {
			return nil, errors.Wrap(err, "failed to load favorite list")
		}

		list = &entity.FavoriteList{UserID: userID}
		if err := favoriteRepo.CreateList(ctx, list); err != nil {
			return nil, errors.Wrap(err, "failed to create favorite list")
		}
	}

	if err := favoriteRepo.LockList(ctx, list.ID); err != nil {
		return nil, errors.Wrap(err, "failed to lock favorite list")
	}

	return list, nil
}
