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

// promotionService implements the PromotionUsecase interface.
type promotionService struct {
	promotionRepo repository.PromotionRepository
	logger        *slog.Logger
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	PromotionRepo repository.PromotionRepository
	Logger        *slog.Logger
}

// NewPromotionService is the constructor for promotionService.
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	return &promotionService{
		promotionRepo: params.PromotionRepo,
		logger:        params.Logger,
	}
}

func (srv *promotionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *promotionService) ListPromotions(ctx context.Context) ([]*entity.Promotion, error) {
	promotions, err := srv.promotionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return promotions, nil
}

func (srv *promotionService) GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	promotion, err := srv.promotionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return nil, domainerrors.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to get promotion")
	}

	return promotion, nil
}

func (srv *promotionService) CreatePromotion(ctx context.Context, input *usecase.PromotionInput) (*entity.Promotion, error) {
	promotion := &entity.Promotion{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Label:       input.Label,
		Price:       input.Price,
		Featured:    input.Featured,
	}

	if err := srv.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Promotion created", slog.Any("promotionID", promotion.ID))

	return promotion, nil
}

func (srv *promotionService) UpdatePromotion(ctx context.Context, id uuid.UUID, input *usecase.PromotionInput) (*entity.Promotion, error) {
	promotion := &entity.Promotion{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Label:       input.Label,
		Price:       input.Price,
		Featured:    input.Featured,
	}

	if err := srv.promotionRepo.Update(ctx, promotion); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return nil, domainerrors.ErrPromotionNotFound
		}

		return nil, err
	}

	return srv.GetPromotion(ctx, id)
}

func (srv *promotionService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	if err := srv.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return domainerrors.ErrPromotionNotFound
		}

		return err
	}

	return nil
}

func (srv *promotionService) DeleteAllPromotions(ctx context.Context) error {
	if err := srv.promotionRepo.DeleteAll(ctx); err != nil {
		return err
	}

	srv.log(ctx).Warn("All promotions deleted")

	return nil
}
