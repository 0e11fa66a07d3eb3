// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"confusion/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLeaderNotFound is returned when a leader is not found.
var ErrLeaderNotFound = errors.New("leader not found")

// LeaderRepository defines the standard operations for leader persistence.
type LeaderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Leader, error)
	List(ctx context.Context) ([]*entity.Leader, error)
	Create(ctx context.Context, leader *entity.Leader) error
	Update(ctx context.Context, leader *entity.Leader) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}
