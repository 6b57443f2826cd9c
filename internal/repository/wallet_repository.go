package repository

import (
	"context"

	"app/internal/domain/model"
)

type WalletRepository interface {
	Create(ctx context.Context, tx model.WalletTransaction) (model.WalletTransaction, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.WalletTransaction, error)
	// BalanceByUserID derives the balance from the ledger: completed
	// credits/refunds count positive, non-failed debits/withdrawals negative.
	BalanceByUserID(ctx context.Context, userID int64) (int64, error)
}
