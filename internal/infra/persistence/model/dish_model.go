package model

import (
	"time"

	"github.com/google/uuid"
)

// DishModel mirrors the 'dishes' table. Price is stored in cents to avoid
// floating point drift.
type DishModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text;not null"`
	Image       string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100);not null"`
	Label       string    `gorm:"type:varchar(100)"`
	Price       int64     `gorm:"not null;default:0"`
	Featured    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Comments []CommentModel `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}

// CommentModel mirrors the 'dish_comments' table. AuthorID is stamped once at
// creation and never updated.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DishID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "dish_comments"
}
