package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type IDGenMock struct{ mock.Mock }

func (m *IDGenMock) NewID() string {
	args := m.Called()
	return args.String(0)
}

func TestWallet_GetWallet_DerivesBalance(t *testing.T) {
	wallet := new(WalletRepoMock)
	uc := usecase.NewWalletUsecase(wallet, nil)

	wallet.On("BalanceByUserID", mock.Anything, int64(5)).Return(int64(150000), nil)
	wallet.On("ListByUserID", mock.Anything, int64(5)).Return([]model.WalletTransaction{
		{ID: 1, UserID: 5, Amount: 150000, Type: model.TransactionTypeCredit, Status: model.TransactionStatusCompleted},
	}, nil)

	got, err := uc.GetWallet(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(150000), got.Balance)
	assert.Len(t, got.Transactions, 1)
}

func TestWallet_GetWallet_Unauthenticated(t *testing.T) {
	uc := usecase.NewWalletUsecase(new(WalletRepoMock), nil)

	_, err := uc.GetWallet(context.Background(), 0)

	assertHTTPStatus(t, err, 401)
}

func TestWallet_RequestWithdrawal_CreatesPendingRow(t *testing.T) {
	wallet := new(WalletRepoMock)
	idGen := new(IDGenMock)
	uc := usecase.NewWalletUsecase(wallet, idGen)

	idGen.On("NewID").Return("abc123")
	wallet.On("BalanceByUserID", mock.Anything, int64(5)).Return(int64(200000), nil)
	wallet.On("Create", mock.Anything, mock.MatchedBy(func(tx model.WalletTransaction) bool {
		return tx.UserID == 5 &&
			tx.Amount == 80000 &&
			tx.Type == model.TransactionTypeWithdrawal &&
			tx.Status == model.TransactionStatusPending &&
			tx.Reference == "WDR-abc123"
	})).Return(model.WalletTransaction{ID: 9, Reference: "WDR-abc123"}, nil)

	tx, err := uc.RequestWithdrawal(context.Background(), 5, usecase.WithdrawalInput{Amount: 80000})

	assert.NoError(t, err)
	assert.Equal(t, "WDR-abc123", tx.Reference)
	wallet.AssertExpectations(t)
}

func TestWallet_RequestWithdrawal_InsufficientBalance(t *testing.T) {
	wallet := new(WalletRepoMock)
	uc := usecase.NewWalletUsecase(wallet, new(IDGenMock))

	wallet.On("BalanceByUserID", mock.Anything, int64(5)).Return(int64(10000), nil)

	_, err := uc.RequestWithdrawal(context.Background(), 5, usecase.WithdrawalInput{Amount: 80000})

	assertHTTPStatus(t, err, 400)
	wallet.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWallet_RequestWithdrawal_RejectsNonPositiveAmount(t *testing.T) {
	wallet := new(WalletRepoMock)
	uc := usecase.NewWalletUsecase(wallet, new(IDGenMock))

	_, err := uc.RequestWithdrawal(context.Background(), 5, usecase.WithdrawalInput{Amount: 0})

	assertHTTPStatus(t, err, 400)
	wallet.AssertNotCalled(t, "BalanceByUserID", mock.Anything, mock.Anything)
}
