package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteListModel mirrors the 'favorite_lists' table. One row per user,
// created lazily on the first add.
type FavoriteListModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Entries []FavoriteEntryModel `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteListModel) TableName() string {
	return "favorite_lists"
}

// FavoriteEntryModel mirrors the 'favorite_entries' table. The composite
// unique index makes duplicate adds fail at the store level regardless of
// what concurrent requests observed.
type FavoriteEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ListID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_entries_list_dish"`
	DishID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_entries_list_dish"`
	CreatedAt time.Time

	Dish *DishModel `gorm:"foreignKey:DishID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteEntryModel) TableName() string {
	return "favorite_entries"
}
