package model

import "time"

// CreatorID is denormalized so the completion flow can credit sellers
// without joining back through artworks.
type OrderItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64     `gorm:"not null;index" json:"order_id"`
	ArtworkID     int64     `gorm:"not null;index" json:"artwork_id"`
	CreatorID     int64     `gorm:"not null;index" json:"creator_id"`
	TitleSnapshot string    `gorm:"type:varchar(255);not null" json:"title_snapshot"`
	UnitPrice     int64     `gorm:"not null;column:unit_price" json:"unit_price"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
