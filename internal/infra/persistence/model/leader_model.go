package model

import (
	"time"

	"github.com/google/uuid"
)

// LeaderModel mirrors the 'leaders' table.
type LeaderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Image       string    `gorm:"type:varchar(255);not null"`
	Designation string    `gorm:"type:varchar(255);not null"`
	Abbr        string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:text;not null"`
	Featured    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeaderModel) TableName() string {
	return "leaders"
}
