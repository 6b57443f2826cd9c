package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentReference is minted at checkout and echoed back by the gateway
// in webhook events. It is the only join key the gateway knows.
type Order struct {
	ID               int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	BuyerID          int64         `gorm:"not null;index" json:"buyer_id"`
	CartID           *int64        `gorm:"index" json:"cart_id,omitempty"`
	PaymentReference string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"payment_reference"`
	PaymentStatus    PaymentStatus `gorm:"type:varchar(20);not null;index" json:"payment_status"`
	Status           OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Total            int64         `gorm:"not null" json:"total"`
	IdempotencyKey   string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	CreatedAt        time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
