package usecase

import (
	"context"

	"github.com/google/uuid"

	"confusion/internal/domain/entity"
)

// LeaderInput defines the writable fields of a leadership profile.
type LeaderInput struct {
	Name        string
	Image       string
	Designation string
	Abbr        string
	Description string
	Featured    bool
}

// LeaderUsecase defines the interface for leadership profile operations.
type LeaderUsecase interface {
	ListLeaders(ctx context.Context) ([]*entity.Leader, error)
	GetLeader(ctx context.Context, id uuid.UUID) (*entity.Leader, error)
	CreateLeader(ctx context.Context, input *LeaderInput) (*entity.Leader, error)
	UpdateLeader(ctx context.Context, id uuid.UUID, input *LeaderInput) (*entity.Leader, error)
	DeleteLeader(ctx context.Context, id uuid.UUID) error
	DeleteAllLeaders(ctx context.Context) error
}
