package model

import "time"

// CartItem keeps the price at add time. Later price changes on the
// artwork do not touch items already in a cart.
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;index;uniqueIndex:idx_cart_artwork" json:"cart_id"`
	ArtworkID int64     `gorm:"not null;index;uniqueIndex:idx_cart_artwork" json:"artwork_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null;column:unit_price" json:"unit_price"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
