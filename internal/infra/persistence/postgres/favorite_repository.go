package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/domain/repository"
	"confusion/internal/infra/persistence/model"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
// Entries carry a composite unique key on (list, dish), so duplicate insertion
// fails in the store even when two transactions race past the same read.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindByUserID retrieves a user's favorite list with dishes hydrated.
func (repo *favoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.FavoriteList, error) {
	var listM model.FavoriteListModel
	err := repo.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("favorite_entries.created_at") }).
		Preload("Entries.Dish").
		First(&listM, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoritesNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite list")
	}

	return toFavoriteListDomain(&listM), nil
}

// CreateList persists a new, empty favorite list for a user.
func (repo *favoriteRepository) CreateList(ctx context.Context, list *entity.FavoriteList) error {
	listM := &model.FavoriteListModel{
		ID:     list.ID,
		UserID: list.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(listM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("favorite list already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite list")
	}

	list.ID = listM.ID
	list.CreatedAt = listM.CreatedAt
	list.UpdatedAt = listM.UpdatedAt

	return nil
}

// LockList acquires a row lock on the list for the duration of the
// surrounding transaction, serializing concurrent mutations per user.
func (repo *favoriteRepository) LockList(ctx context.Context, listID uuid.UUID) error {
	var listM model.FavoriteListModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&listM, "id = ?", listID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrFavoritesNotFound
		}

		return errors.Wrap(err, "failed to lock favorite list")
	}

	return nil
}

// AddEntry conditionally inserts a dish reference. The composite unique index
// turns a concurrent duplicate into ErrFavoriteEntryExists instead of a
// second row.
func (repo *favoriteRepository) AddEntry(ctx context.Context, listID, dishID uuid.UUID) error {
	entryM := &model.FavoriteEntryModel{
		ListID: listID,
		DishID: dishID,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrFavoriteEntryExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFavoritesNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite entry")
	}

	return nil
}

// RemoveEntry removes a dish reference, or returns ErrFavoriteEntryNotFound.
func (repo *favoriteRepository) RemoveEntry(ctx context.Context, listID, dishID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.FavoriteEntryModel{}, "list_id = ? AND dish_id = ?", listID, dishID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove favorite entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteEntryNotFound
	}

	return nil
}

// DeleteList removes the whole list record and, through the cascade, its entries.
func (repo *favoriteRepository) DeleteList(ctx context.Context, listID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.FavoriteListModel{}, "id = ?", listID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite list")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoritesNotFound
	}

	return nil
}

// toFavoriteListDomain maps the persistence model to a pure domain entity.
func toFavoriteListDomain(data *model.FavoriteListModel) *entity.FavoriteList {
	dishIDs := make([]uuid.UUID, 0, len(data.Entries))
	dishes := make([]*entity.Dish, 0, len(data.Entries))
	for i := range data.Entries {
		dishIDs = append(dishIDs, data.Entries[i].DishID)
		if data.Entries[i].Dish != nil {
			dishes = append(dishes, toDishDomain(data.Entries[i].Dish))
		}
	}

	return &entity.FavoriteList{
		ID:        data.ID,
		UserID:    data.UserID,
		DishIDs:   dishIDs,
		Dishes:    dishes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
