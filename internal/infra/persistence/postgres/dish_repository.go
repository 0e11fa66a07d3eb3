package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/domain/repository"
	"confusion/internal/infra/persistence/model"
)

// dishRepository implements the domain.DishRepository interface using GORM.
// Comments live in their own table; the embedded-document shape the API
// exposes is reassembled by preloading.
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{db: db}
}

// FindByID retrieves a dish by id with its comments and comment authors hydrated.
func (repo *dishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	var dishM model.DishModel
	err := repo.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("dish_comments.created_at") }).
		Preload("Comments.Author").
		First(&dishM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish by id")
	}

	return toDishDomain(&dishM), nil
}

// List retrieves all dishes with comments and comment authors hydrated.
func (repo *dishRepository) List(ctx context.Context) ([]*entity.Dish, error) {
	var dishMs []model.DishModel
	err := repo.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("dish_comments.created_at") }).
		Preload("Comments.Author").
		Order("created_at").
		Find(&dishMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dishes")
	}

	dishes := make([]*entity.Dish, 0, len(dishMs))
	for i := range dishMs {
		dishes = append(dishes, toDishDomain(&dishMs[i]))
	}

	return dishes, nil
}

// Create persists a new dish.
func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Create(dishM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("dish name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = dishM.ID
	dish.CreatedAt = dishM.CreatedAt
	dish.UpdatedAt = dishM.UpdatedAt

	return nil
}

// Update modifies the dish's own fields. Comments are untouched.
func (repo *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	result := repo.db.WithContext(ctx).Model(&model.DishModel{}).
		Where("id = ?", dish.ID).
		Select("Name", "Description", "Image", "Category", "Label", "Price", "Featured").
		Updates(dishM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("dish name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dish")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// Delete removes a dish and, through the cascade, its comments.
func (repo *dishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.DishModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dish")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// DeleteAll removes every dish.
func (repo *dishRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.DishModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete all dishes")
	}

	return nil
}

// AddComment appends a comment to a dish's ordered list.
func (repo *dishRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDishNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindComment retrieves a single comment scoped to a dish.
func (repo *dishRepository) FindComment(ctx context.Context, dishID, commentID uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		First(&commentM, "id = ? AND dish_id = ?", commentID, dishID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return toCommentDomain(&commentM), nil
}

// UpdateComment persists changes to an existing comment. The author column is
// never written here, so authorship cannot drift after creation.
func (repo *dishRepository) UpdateComment(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("id = ? AND dish_id = ?", comment.ID, comment.DishID).
		Select("Rating", "Comment").
		Updates(fromCommentDomain(comment))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteComment removes exactly one comment from a dish.
func (repo *dishRepository) DeleteComment(ctx context.Context, dishID, commentID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, "id = ? AND dish_id = ?", commentID, dishID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteComments removes every comment of a dish, leaving the dish itself.
func (repo *dishRepository) DeleteComments(ctx context.Context, dishID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, "dish_id = ?", dishID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comments")
	}

	return nil
}

// toDishDomain maps the persistence model to a pure domain entity.
func toDishDomain(data *model.DishModel) *entity.Dish {
	comments := make([]*entity.Comment, 0, len(data.Comments))
	for i := range data.Comments {
		comments = append(comments, toCommentDomain(&data.Comments[i]))
	}

	return &entity.Dish{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		Category:    data.Category,
		Label:       data.Label,
		Price:       data.Price,
		Featured:    data.Featured,
		Comments:    comments,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromDishDomain maps a domain entity to the persistence model. Comments are
// managed through their own operations and deliberately not mapped.
func fromDishDomain(data *entity.Dish) *model.DishModel {
	return &model.DishModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		Category:    data.Category,
		Label:       data.Label,
		Price:       data.Price,
		Featured:    data.Featured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toCommentDomain maps the persistence model to a pure domain entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	comment := &entity.Comment{
		ID:        data.ID,
		DishID:    data.DishID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Author != nil {
		comment.Author = toUserDomain(data.Author)
	}

	return comment
}

// fromCommentDomain maps a domain entity to the persistence model.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        data.ID,
		DishID:    data.DishID,
		AuthorID:  data.AuthorID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
