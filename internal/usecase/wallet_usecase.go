package usecase

import (
	"context"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type WalletUsecase struct {
	walletRepo repo.WalletRepository
	idGen      IDGenerator
}

func NewWalletUsecase(walletRepo repo.WalletRepository, idGen IDGenerator) *WalletUsecase {
	return &WalletUsecase{walletRepo: walletRepo, idGen: idGen}
}

type WalletResponse struct {
	Balance      int64                     `json:"balance"`
	Transactions []model.WalletTransaction `json:"transactions"`
}

// GetWallet derives the balance from the ledger on every read.
func (u *WalletUsecase) GetWallet(ctx context.Context, userID int64) (WalletResponse, error) {
	if userID <= 0 {
		return WalletResponse{}, NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	balance, err := u.walletRepo.BalanceByUserID(ctx, userID)
	if err != nil {
		return WalletResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	txs, err := u.walletRepo.ListByUserID(ctx, userID)
	if err != nil {
		return WalletResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return WalletResponse{Balance: balance, Transactions: txs}, nil
}

type WithdrawalInput struct {
	Amount int64
}

// RequestWithdrawal appends a pending withdrawal row. Because pending
// withdrawals already subtract in the balance view, two requests cannot
// overdraw sequentially; the payout itself is handled out of band.
func (u *WalletUsecase) RequestWithdrawal(ctx context.Context, userID int64, in WithdrawalInput) (model.WalletTransaction, error) {
	if userID <= 0 {
		return model.WalletTransaction{}, NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	if in.Amount <= 0 {
		return model.WalletTransaction{}, NewHTTPError(http.StatusBadRequest, "invalid amount")
	}

	balance, err := u.walletRepo.BalanceByUserID(ctx, userID)
	if err != nil {
		return model.WalletTransaction{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if in.Amount > balance {
		return model.WalletTransaction{}, NewHTTPError(http.StatusBadRequest, "insufficient balance")
	}

	tx, err := u.walletRepo.Create(ctx, model.WalletTransaction{
		UserID:      userID,
		Amount:      in.Amount,
		Type:        model.TransactionTypeWithdrawal,
		Status:      model.TransactionStatusPending,
		Description: "Withdrawal request",
		Reference:   fmt.Sprintf("WDR-%s", u.idGen.NewID()),
	})
	if err != nil {
		return model.WalletTransaction{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return tx, nil
}
