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

// leaderService implements the LeaderUsecase interface.
type leaderService struct {
	leaderRepo repository.LeaderRepository
	logger     *slog.Logger
}

// LeaderServiceParams holds dependencies for LeaderService, injected by Fx.
type LeaderServiceParams struct {
	fx.In

	LeaderRepo repository.LeaderRepository
	Logger     *slog.Logger
}

// NewLeaderService is the constructor for leaderService.
func NewLeaderService(params LeaderServiceParams) usecase.LeaderUsecase {
	return &leaderService{
		leaderRepo: params.LeaderRepo,
		logger:     params.Logger,
	}
}

func (srv *leaderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *leaderService) ListLeaders(ctx context.Context) ([]*entity.Leader, error) {
	leaders, err := srv.leaderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leaders")
	}

	return leaders, nil
}

func (srv *leaderService) GetLeader(ctx context.Context, id uuid.UUID) (*entity.Leader, error) {
	leader, err := srv.leaderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeaderNotFound) {
			return nil, domainerrors.ErrLeaderNotFound
		}

		return nil, errors.Wrap(err, "failed to get leader")
	}

	return leader, nil
}

func (srv *leaderService) CreateLeader(ctx context.Context, input *usecase.LeaderInput) (*entity.Leader, error) {
	leader := &entity.Leader{
		Name:        input.Name,
		Image:       input.Image,
		Designation: input.Designation,
		Abbr:        input.Abbr,
		Description: input.Description,
		Featured:    input.Featured,
	}

	if err := srv.leaderRepo.Create(ctx, leader); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Leader created", slog.Any("leaderID", leader.ID))

	return leader, nil
}

func (srv *leaderService) UpdateLeader(ctx context.Context, id uuid.UUID, input *usecase.LeaderInput) (*entity.Leader, error) {
	leader := &entity.Leader{
		ID:          id,
		Name:        input.Name,
		Image:       input.Image,
		Designation: input.Designation,
		Abbr:        input.Abbr,
		Description: input.Description,
		Featured:    input.Featured,
	}

	if err := srv.leaderRepo.Update(ctx, leader); err != nil {
		if errors.Is(err, repository.ErrLeaderNotFound) {
			return nil, domainerrors.ErrLeaderNotFound
		}

		return nil, err
	}

	return srv.GetLeader(ctx, id)
}

func (srv *leaderService) DeleteLeader(ctx context.Context, id uuid.UUID) error {
	if err := srv.leaderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLeaderNotFound) {
			return domainerrors.ErrLeaderNotFound
		}

		return err
	}

	return nil
}

func (srv *leaderService) DeleteAllLeaders(ctx context.Context) error {
	if err := srv.leaderRepo.DeleteAll(ctx); err != nil {
		return err
	}

	srv.log(ctx).Warn("All leaders deleted")

	return nil
}
