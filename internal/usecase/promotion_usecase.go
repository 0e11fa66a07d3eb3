package usecase

import (
	"context"

	"github.com/google/uuid"

	"confusion/internal/domain/entity"
)

// PromotionInput defines the writable fields of a promotion.
type PromotionInput struct {
	Name        string
	Description string
	Image       string
	Label       string
	Price       int64
	Featured    bool
}

// PromotionUsecase defines the interface for promotion catalog operations.
type PromotionUsecase interface {
	ListPromotions(ctx context.Context) ([]*entity.Promotion, error)
	GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)
	CreatePromotion(ctx context.Context, input *PromotionInput) (*entity.Promotion, error)
	UpdatePromotion(ctx context.Context, id uuid.UUID, input *PromotionInput) (*entity.Promotion, error)
	DeletePromotion(ctx context.Context, id uuid.UUID) error
	DeleteAllPromotions(ctx context.Context) error
}
