package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type WalletGormRepository struct {
	db *gorm.DB
}

func NewWalletGormRepository(db *gorm.DB) *WalletGormRepository {
	return &WalletGormRepository{db: db}
}

func (r *WalletGormRepository) Create(ctx context.Context, tx model.WalletTransaction) (model.WalletTransaction, error) {
	if err := r.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return model.WalletTransaction{}, err
	}
	return tx, nil
}

func (r *WalletGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.WalletTransaction, error) {
	var txs []model.WalletTransaction

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&txs).Error; err != nil {
		return []model.WalletTransaction{}, err
	}

	return txs, nil
}

// BalanceByUserID sums the ledger on read. Completed credits and refunds
// add; debits and withdrawals that have not failed subtract, so a
// pending withdrawal already holds its amount back.
func (r *WalletGormRepository) BalanceByUserID(ctx context.Context, userID int64) (int64, error) {
	var balance int64

	err := r.db.WithContext(ctx).
		Model(&model.WalletTransaction{}).
		Select(`COALESCE(SUM(CASE
			WHEN transaction_type IN ('credit','refund') AND status = 'completed' THEN amount
			WHEN transaction_type IN ('debit','withdrawal') AND status <> 'failed' THEN -amount
			ELSE 0 END), 0)`).
		Where("user_id = ?", userID).
		Scan(&balance).Error

	if err != nil {
		return 0, err
	}
	return balance, nil
}
