package model

import (
	"time"

	"gorm.io/datatypes"
)

type TransactionType string

const (
	TransactionTypeCredit     TransactionType = "credit"
	TransactionTypeDebit      TransactionType = "debit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeRefund     TransactionType = "refund"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Append-only ledger row. Balance is always derived by summing rows,
// never stored as a counter on the user.
type WalletTransaction struct {
	ID          int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64             `gorm:"not null;index" json:"user_id"`
	Amount      int64             `gorm:"not null" json:"amount"`
	Type        TransactionType   `gorm:"type:varchar(20);not null;column:transaction_type" json:"transaction_type"`
	Status      TransactionStatus `gorm:"type:varchar(20);not null" json:"status"`
	Description string            `gorm:"type:text" json:"description"`
	Reference   string            `gorm:"type:varchar(255);not null;uniqueIndex" json:"reference"`
	Metadata    datatypes.JSON    `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
}
