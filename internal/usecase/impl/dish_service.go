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

// dishService implements the DishUsecase interface.
type dishService struct {
	dishRepo repository.DishRepository
	logger   *slog.Logger
}

// DishServiceParams holds dependencies for DishService, injected by Fx.
type DishServiceParams struct {
	fx.In

	DishRepo repository.DishRepository
	Logger   *slog.Logger
}

// NewDishService is the constructor for dishService.
func NewDishService(params DishServiceParams) usecase.DishUsecase {
	return &dishService{
		dishRepo: params.DishRepo,
		logger:   params.Logger,
	}
}

func (srv *dishService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDishes returns every dish with comments hydrated.
func (srv *dishService) ListDishes(ctx context.Context) ([]*entity.Dish, error) {
	dishes, err := srv.dishRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dishes")
	}

	return dishes, nil
}

// GetDish returns one dish with comments hydrated.
func (srv *dishService) GetDish(ctx context.Context, dishID uuid.UUID) (*entity.Dish, error) {
	dish, err := srv.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to get dish")
	}

	return dish, nil
}

// CreateDish adds a new dish to the catalog.
func (srv *dishService) CreateDish(ctx context.Context, input *usecase.DishInput) (*entity.Dish, error) {
	dish := dishFromInput(input)

	if err := srv.dishRepo.Create(ctx, dish); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Dish created", slog.Any("dishID", dish.ID), slog.String("name", dish.Name))

	return dish, nil
}

// UpdateDish replaces a dish's writable fields and returns the fresh state.
func (srv *dishService) UpdateDish(ctx context.Context, dishID uuid.UUID, input *usecase.DishInput) (*entity.Dish, error) {
	dish := dishFromInput(input)
	dish.ID = dishID

	if err := srv.dishRepo.Update(ctx, dish); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, err
	}

	return srv.GetDish(ctx, dishID)
}

// DeleteDish removes a dish and its comments.
func (srv *dishService) DeleteDish(ctx context.Context, dishID uuid.UUID) error {
	if err := srv.dishRepo.Delete(ctx, dishID); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return domainerrors.ErrDishNotFound
		}

		return err
	}

	srv.log(ctx).Info("Dish deleted", slog.Any("dishID", dishID))

	return nil
}

// DeleteAllDishes removes every dish.
func (srv *dishService) DeleteAllDishes(ctx context.Context) error {
	if err := srv.dishRepo.DeleteAll(ctx); err != nil {
		return err
	}

	srv.log(ctx).Warn("All dishes deleted")

	return nil
}

// ListComments returns a dish's comments in insertion order.
func (srv *dishService) ListComments(ctx context.Context, dishID uuid.UUID) ([]*entity.Comment, error) {
	dish, err := srv.GetDish(ctx, dishID)
	if err != nil {
		return nil, err
	}

	return dish.Comments, nil
}

// GetComment returns a single comment scoped to a dish. The scoping matters:
// a valid comment id under the wrong dish id is still not found.
func (srv *dishService) GetComment(ctx context.Context, dishID, commentID uuid.UUID) (*entity.Comment, error) {
	if _, err := srv.GetDish(ctx, dishID); err != nil {
		return nil, err
	}

	comment, err := srv.dishRepo.FindComment(ctx, dishID, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to get comment")
	}

	return comment, nil
}

// AddComment posts a comment on a dish. The author is stamped from the
// authenticated actor; nothing in the request body can influence it.
func (srv *dishService) AddComment(ctx context.Context, actor *entity.User, dishID uuid.UUID, input *usecase.AddCommentInput) (*entity.Comment, error) {
	if _, err := srv.GetDish(ctx, dishID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		DishID:   dishID,
		AuthorID: actor.ID,
		Author:   actor,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	if err := srv.dishRepo.AddComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, err
	}

	srv.log(ctx).Info("Comment added", slog.Any("dishID", dishID), slog.Any("authorID", actor.ID))

	return comment, nil
}

// UpdateComment modifies a comment. Only the author may do this; an
// administrator editing someone else's comment is refused like anyone else.
func (srv *dishService) UpdateComment(ctx context.Context, actor *entity.User, dishID, commentID uuid.UUID, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	comment, err := srv.GetComment(ctx, dishID, commentID)
	if err != nil {
		return nil, err
	}

	if !comment.IsAuthor(actor.ID) {
		srv.log(ctx).Warn("Refused comment update by non-author",
			slog.Any("commentID", commentID), slog.Any("actorID", actor.ID))

		return nil, domainerrors.ErrNotAuthorized
	}

	if input.Rating != nil {
		comment.Rating = *input.Rating
	}
	if input.Comment != nil {
		comment.Comment = *input.Comment
	}

	if err := srv.dishRepo.UpdateComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, err
	}

	return srv.GetComment(ctx, dishID, commentID)
}

// DeleteComment removes a comment under the same author-only rule as updates.
func (srv *dishService) DeleteComment(ctx context.Context, actor *entity.User, dishID, commentID uuid.UUID) error {
	comment, err := srv.GetComment(ctx, dishID, commentID)
	if err != nil {
		return err
	}

	if !comment.IsAuthor(actor.ID) {
		srv.log(ctx).Warn("Refused comment delete by non-author",
			slog.Any("commentID", commentID), slog.Any("actorID", actor.ID))

		return domainerrors.ErrNotAuthorized
	}

	if err := srv.dishRepo.DeleteComment(ctx, dishID, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return err
	}

	return nil
}

// ClearComments removes every comment on a dish. Route-level authorization
// restricts this to administrators.
func (srv *dishService) ClearComments(ctx context.Context, dishID uuid.UUID) error {
	if _, err := srv.GetDish(ctx, dishID); err != nil {
		return err
	}

	if err := srv.dishRepo.DeleteComments(ctx, dishID); err != nil {
		return err
	}

	srv.log(ctx).Warn("All comments cleared", slog.Any("dishID", dishID))

	return nil
}

func dishFromInput(input *usecase.DishInput) *entity.Dish {
	return &entity.Dish{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Category:    input.Category,
		Label:       input.Label,
		Price:       input.Price,
		Featured:    input.Featured,
	}
}
