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

// dishServiceFixtures holds all test dependencies for dish service tests.
type dishServiceFixtures struct {
	service  usecase.DishUsecase
	dishRepo *mockRepo.MockDishRepository
}

func createTestDishService(t *testing.T) dishServiceFixtures {
	dishRepo := mockRepo.NewMockDishRepository(t)

	svc := NewDishService(DishServiceParams{
		DishRepo: dishRepo,
		Logger:   newDiscardLogger(),
	})

	return dishServiceFixtures{
		service:  svc,
		dishRepo: dishRepo,
	}
}

func testDish(id uuid.UUID) *entity.Dish {
	return &entity.Dish{
		ID:          id,
		Name:        "Uthappizza",
		Description: "A unique combination of Indian Uthappam and Italian pizza.",
		Image:       "images/uthappizza.png",
		Category:    "mains",
		Label:       "Hot",
		Price:       495,
	}
}

func TestDishService_GetDish_NotFound(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(nil, repository.ErrDishNotFound)

	dish, err := fx.service.GetDish(ctx, dishID)

	assert.Nil(t, dish)
	assert.True(t, errors.Is(err, domainerrors.ErrDishNotFound))
}

func TestDishService_CreateDish(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	input := &usecase.DishInput{
		Name:        "Uthappizza",
		Description: "A unique combination of Indian Uthappam and Italian pizza.",
		Image:       "images/uthappizza.png",
		Category:    "mains",
		Label:       "Hot",
		Price:       495,
	}

	fx.dishRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Dish")).
		Run(func(ctx context.Context, dish *entity.Dish) {
			dish.ID = uuid.New()
		}).
		Return(nil)

	dish, err := fx.service.CreateDish(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, dish.Name)
	assert.NotEqual(t, uuid.Nil, dish.ID)
}

func TestDishService_UpdateDish_NotFound(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()

	fx.dishRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Dish")).
		Return(repository.ErrDishNotFound)

	dish, err := fx.service.UpdateDish(ctx, dishID, &usecase.DishInput{Name: "Renamed"})

	assert.Nil(t, dish)
	assert.True(t, errors.Is(err, domainerrors.ErrDishNotFound))
}

func TestDishService_AddComment_StampsAuthorFromActor(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	actor := &entity.User{ID: uuid.New(), Username: "testuser"}

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil)
	fx.dishRepo.EXPECT().
		AddComment(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			comment.ID = uuid.New()
		}).
		Return(nil)

	comment, err := fx.service.AddComment(ctx, actor, dishID, &usecase.AddCommentInput{
		Rating:  5,
		Comment: "Imagine all the eatables, living in conFusion!",
	})

	require.NoError(t, err)
	assert.Equal(t, actor.ID, comment.AuthorID)
	assert.Equal(t, dishID, comment.DishID)
}

func TestDishService_AddComment_UnknownDish(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	actor := &entity.User{ID: uuid.New()}

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(nil, repository.ErrDishNotFound)

	comment, err := fx.service.AddComment(ctx, actor, dishID, &usecase.AddCommentInput{Rating: 4, Comment: "fine"})

	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrDishNotFound))
}

func TestDishService_UpdateComment_AuthorCanEdit(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	commentID := uuid.New()
	actor := &entity.User{ID: uuid.New(), Username: "testuser"}

	stored := &entity.Comment{ID: commentID, DishID: dishID, AuthorID: actor.ID, Rating: 3, Comment: "okay"}
	updated := &entity.Comment{ID: commentID, DishID: dishID, AuthorID: actor.ID, Rating: 5, Comment: "okay"}

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil).Times(2)
	fx.dishRepo.EXPECT().FindComment(ctx, dishID, commentID).Return(stored, nil).Once()
	fx.dishRepo.EXPECT().
		UpdateComment(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			assert.Equal(t, 5, comment.Rating)
			assert.Equal(t, "okay", comment.Comment)
		}).
		Return(nil)
	fx.dishRepo.EXPECT().FindComment(ctx, dishID, commentID).Return(updated, nil).Once()

	rating := 5
	comment, err := fx.service.UpdateComment(ctx, actor, dishID, commentID, &usecase.UpdateCommentInput{Rating: &rating})

	require.NoError(t, err)
	assert.Equal(t, 5, comment.Rating)
}

func TestDishService_UpdateComment_AdminIsNotAuthor(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	commentID := uuid.New()
	author := uuid.New()
	admin := &entity.User{ID: uuid.New(), Username: "admin", Admin: true}

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil)
	fx.dishRepo.EXPECT().
		FindComment(ctx, dishID, commentID).
		Return(&entity.Comment{ID: commentID, DishID: dishID, AuthorID: author, Rating: 1, Comment: "bad"}, nil)

	rating := 5
	comment, err := fx.service.UpdateComment(ctx, admin, dishID, commentID, &usecase.UpdateCommentInput{Rating: &rating})

	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthorized))
}

func TestDishService_DeleteComment_NonAuthorRefused(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	commentID := uuid.New()
	author := uuid.New()
	actor := &entity.User{ID: uuid.New(), Username: "other"}

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil)
	fx.dishRepo.EXPECT().
		FindComment(ctx, dishID, commentID).
		Return(&entity.Comment{ID: commentID, DishID: dishID, AuthorID: author}, nil)

	err := fx.service.DeleteComment(ctx, actor, dishID, commentID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthorized))
}

func TestDishService_DeleteComment_AuthorSucceeds(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	commentID := uuid.New()
	actor := &entity.User{ID: uuid.New()}

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil)
	fx.dishRepo.EXPECT().
		FindComment(ctx, dishID, commentID).
		Return(&entity.Comment{ID: commentID, DishID: dishID, AuthorID: actor.ID}, nil)
	fx.dishRepo.EXPECT().DeleteComment(ctx, dishID, commentID).Return(nil)

	require.NoError(t, fx.service.DeleteComment(ctx, actor, dishID, commentID))
}

func TestDishService_GetComment_WrongDishIsNotFound(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	commentID := uuid.New()

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil)
	fx.dishRepo.EXPECT().FindComment(ctx, dishID, commentID).Return(nil, repository.ErrCommentNotFound)

	comment, err := fx.service.GetComment(ctx, dishID, commentID)

	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestDishService_ClearComments(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(testDish(dishID), nil)
	fx.dishRepo.EXPECT().DeleteComments(ctx, dishID).Return(nil)

	require.NoError(t, fx.service.ClearComments(ctx, dishID))
}
