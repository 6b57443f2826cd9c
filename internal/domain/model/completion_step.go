package model

import "time"

// CompletionStep journals each post-payment side effect. The unique
// (order_id, step_key) pair makes a redelivered webhook skip steps that
// already ran instead of crediting or notifying twice.
type CompletionStep struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index;uniqueIndex:idx_order_step" json:"order_id"`
	StepKey   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_order_step" json:"step_key"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
