package model

import (
	"time"

	"gorm.io/gorm"
)

// Artwork is the listed product: a piece of art, fashion, a book or an event ticket.
type Artwork struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatorID    int64          `gorm:"not null;index" json:"creator_id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Price        int64          `gorm:"not null" json:"price"`
	ThumbnailURL string         `gorm:"type:text" json:"thumbnail_url"`
	IsAvailable  bool           `gorm:"not null;default:false" json:"is_available"`
	CreatedAt    time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
