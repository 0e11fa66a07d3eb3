// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"confusion/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPromotionNotFound is returned when a promotion is not found.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository defines the standard operations for promotion persistence.
type PromotionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)
	List(ctx context.Context) ([]*entity.Promotion, error)
	Create(ctx context.Context, promotion *entity.Promotion) error
	Update(ctx context.Context, promotion *entity.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}
