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

// leaderRepository implements the domain.LeaderRepository interface using GORM.
type leaderRepository struct {
	db *gorm.DB
}

// NewLeaderRepository is the constructor for leaderRepository.
func NewLeaderRepository(db *gorm.DB) repository.LeaderRepository {
	return &leaderRepository{db: db}
}

func (repo *leaderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Leader, error) {
	var leaderM model.LeaderModel
	if err := repo.db.WithContext(ctx).First(&leaderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeaderNotFound
		}

		return nil, errors.Wrap(err, "failed to find leader by id")
	}

	return toLeaderDomain(&leaderM), nil
}

func (repo *leaderRepository) List(ctx context.Context) ([]*entity.Leader, error) {
	var leaderMs []model.LeaderModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&leaderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list leaders")
	}

	leaders := make([]*entity.Leader, 0, len(leaderMs))
	for i := range leaderMs {
		leaders = append(leaders, toLeaderDomain(&leaderMs[i]))
	}

	return leaders, nil
}

func (repo *leaderRepository) Create(ctx context.Context, leader *entity.Leader) error {
	leaderM := fromLeaderDomain(leader)

	if err := repo.db.WithContext(ctx).Create(leaderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create leader")
	}

	leader.ID = leaderM.ID
	leader.CreatedAt = leaderM.CreatedAt
	leader.UpdatedAt = leaderM.UpdatedAt

	return nil
}

func (repo *leaderRepository) Update(ctx context.Context, leader *entity.Leader) error {
	result := repo.db.WithContext(ctx).Model(&model.LeaderModel{}).
		Where("id = ?", leader.ID).
		Select("Name", "Image", "Designation", "Abbr", "Description", "Featured").
		Updates(fromLeaderDomain(leader))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update leader")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLeaderNotFound
	}

	return nil
}

func (repo *leaderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.LeaderModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete leader")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLeaderNotFound
	}

	return nil
}

func (repo *leaderRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.LeaderModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete all leaders")
	}

	return nil
}

func toLeaderDomain(data *model.LeaderModel) *entity.Leader {
	return &entity.Leader{
		ID:          data.ID,
		Name:        data.Name,
		Image:       data.Image,
		Designation: data.Designation,
		Abbr:        data.Abbr,
		Description: data.Description,
		Featured:    data.Featured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromLeaderDomain(data *entity.Leader) *model.LeaderModel {
	return &model.LeaderModel{
		ID:          data.ID,
		Name:        data.Name,
		Image:       data.Image,
		Designation: data.Designation,
		Abbr:        data.Abbr,
		Description: data.Description,
		Featured:    data.Featured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
