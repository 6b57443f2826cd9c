package model

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationTypeOrderConfirmed NotificationType = "order_confirmed"
	NotificationTypeNewSale        NotificationType = "new_sale"
	NotificationTypePaymentFailed  NotificationType = "payment_failed"
)

type Notification struct {
	ID        int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64            `gorm:"not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(50);not null" json:"type"`
	Title     string           `gorm:"type:varchar(255);not null" json:"title"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Payload   datatypes.JSON   `gorm:"type:jsonb" json:"payload,omitempty"`
	Read      bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
}
