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

// promotionRepository implements the domain.PromotionRepository interface using GORM.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

func (repo *promotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	var promoM model.PromotionModel
	if err := repo.db.WithContext(ctx).First(&promoM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion by id")
	}

	return toPromotionDomain(&promoM), nil
}

func (repo *promotionRepository) List(ctx context.Context) ([]*entity.Promotion, error) {
	var promoMs []model.PromotionModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&promoMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promoMs))
	for i := range promoMs {
		promotions = append(promotions, toPromotionDomain(&promoMs[i]))
	}

	return promotions, nil
}

func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	promoM := fromPromotionDomain(promotion)

	if err := repo.db.WithContext(ctx).Create(promoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("promotion name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	promotion.ID = promoM.ID
	promotion.CreatedAt = promoM.CreatedAt
	promotion.UpdatedAt = promoM.UpdatedAt

	return nil
}

func (repo *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	result := repo.db.WithContext(ctx).Model(&model.PromotionModel{}).
		Where("id = ?", promotion.ID).
		Select("Name", "Description", "Image", "Label", "Price", "Featured").
		Updates(fromPromotionDomain(promotion))
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("promotion name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

func (repo *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PromotionModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

func (repo *promotionRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.PromotionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete all promotions")
	}

	return nil
}

func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	return &entity.Promotion{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		Label:       data.Label,
		Price:       data.Price,
		Featured:    data.Featured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPromotionDomain(data *entity.Promotion) *model.PromotionModel {
	return &model.PromotionModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		Label:       data.Label,
		Price:       data.Price,
		Featured:    data.Featured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
