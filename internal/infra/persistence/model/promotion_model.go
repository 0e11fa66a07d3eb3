package model

import (
	"time"

	"github.com/google/uuid"
)

// PromotionModel mirrors the 'promotions' table.
type PromotionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text;not null"`
	Image       string    `gorm:"type:varchar(255);not null"`
	Label       string    `gorm:"type:varchar(100)"`
	Price       int64     `gorm:"not null;default:0"`
	Featured    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}
