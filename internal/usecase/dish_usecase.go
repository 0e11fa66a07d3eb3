package usecase

import (
	"context"

	"github.com/google/uuid"

	"confusion/internal/domain/entity"
)

// --- Input DTOs ---

// DishInput defines the writable fields of a dish.
type DishInput struct {
	Name        string
	Description string
	Image       string
	Category    string
	Label       string
	Price       int64
	Featured    bool
}

// AddCommentInput defines the data required to post a comment. The author is
// never part of the input; it is stamped from the authenticated principal.
type AddCommentInput struct {
	Rating  int
	Comment string
}

// UpdateCommentInput defines the fields a comment's author may change.
// Nil fields are left untouched.
type UpdateCommentInput struct {
	Rating  *int
	Comment *string
}

// DishUsecase defines the interface for dish catalog and comment operations.
type DishUsecase interface {
	// ListDishes returns every dish with comments hydrated.
	ListDishes(ctx context.Context) ([]*entity.Dish, error)

	// GetDish returns one dish with comments hydrated.
	GetDish(ctx context.Context, dishID uuid.UUID) (*entity.Dish, error)

	// CreateDish adds a new dish to the catalog.
	CreateDish(ctx context.Context, input *DishInput) (*entity.Dish, error)

	// UpdateDish replaces a dish's writable fields.
	UpdateDish(ctx context.Context, dishID uuid.UUID, input *DishInput) (*entity.Dish, error)

	// DeleteDish removes a dish and its comments.
	DeleteDish(ctx context.Context, dishID uuid.UUID) error

	// DeleteAllDishes removes every dish.
	DeleteAllDishes(ctx context.Context) error

	// ListComments returns a dish's comments in insertion order.
	ListComments(ctx context.Context, dishID uuid.UUID) ([]*entity.Comment, error)

	// GetComment returns a single comment scoped to a dish.
	GetComment(ctx context.Context, dishID, commentID uuid.UUID) (*entity.Comment, error)

	// AddComment posts a comment on a dish, stamped with the actor as author.
	AddComment(ctx context.Context, actor *entity.User, dishID uuid.UUID, input *AddCommentInput) (*entity.Comment, error)

	// UpdateComment modifies a comment. Only the author may do this;
	// administrator status grants no exception.
	UpdateComment(ctx context.Context, actor *entity.User, dishID, commentID uuid.UUID, input *UpdateCommentInput) (*entity.Comment, error)

	// DeleteComment removes a comment. Only the author may do this;
	// administrator status grants no exception.
	DeleteComment(ctx context.Context, actor *entity.User, dishID, commentID uuid.UUID) error

	// ClearComments removes every comment on a dish. Reserved for administrators.
	ClearComments(ctx context.Context, dishID uuid.UUID) error
}
