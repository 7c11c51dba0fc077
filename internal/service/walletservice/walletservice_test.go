package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockLedgerRepo, *MockQuotaRepo, *MockWithdrawalRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	quotaRepo := NewMockQuotaRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(walletRepo, ledgerRepo, quotaRepo, withdrawalRepo, txManager, 1000, 100)
	defer ctrl.Finish()
	return service, walletRepo, ledgerRepo, quotaRepo, withdrawalRepo, txManager
}

func passThroughTx(txManager *pg.MockTXManager) *gomock.Call {
	return txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestGetWallet(t *testing.T) {
	service, walletRepo, _, _, _, _ := NewMock(t)

	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name:   "Retrieve wallet successfully",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:    1,
					ORBalance: 150.0,
				}, nil)
			},
			expectedWallet: &domain.Wallet{UserID: 1, ORBalance: 150.0},
			expectedError:  nil,
		},
		{
			name:   "Wallet missing",
			userID: 2,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedWallet: nil,
			expectedError:  ErrAccountNotFound,
		},
		{
			name:   "Error retrieving wallet",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedWallet: nil,
			expectedError:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			wallet, err := service.GetWallet(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, walletRepo, ledgerRepo, quotaRepo, _, txManager := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		kind            domain.ActivityKind
		amount          float64
		prepareMock     func()
		expectedBalance float64
		expectedError   error
	}{
		{
			name:   "Credit ad reward and consume quota",
			userID: 1,
			kind:   domain.KindAd,
			amount: 5,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, ORBalance: 10}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
						return w, nil
					})
				ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.EarningTransaction{}, nil)
				quotaRepo.EXPECT().Consume(gomock.Any(), 1, domain.KindAd, gomock.Any()).Return(1, nil)
			},
			expectedBalance: 15,
			expectedError:   nil,
		},
		{
			name:   "Game reward has no quota to consume",
			userID: 1,
			kind:   domain.KindGame,
			amount: 60,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, ORBalance: 0}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
						return w, nil
					})
				ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.EarningTransaction{}, nil)
			},
			expectedBalance: 60,
			expectedError:   nil,
		},
		{
			name:          "Non-positive amount rejected",
			userID:        1,
			kind:          domain.KindAd,
			amount:        0,
			prepareMock:   nil,
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Account not found",
			userID: 9,
			kind:   domain.KindAd,
			amount: 5,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name:   "Ledger write failure rolls the credit back",
			userID: 1,
			kind:   domain.KindAd,
			amount: 5,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, ORBalance: 10}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
						return w, nil
					})
				ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("ledger insert failed"))
			},
			expectedError: errors.New("ledger insert failed"),
		},
		{
			name:   "Persistent conflict surfaces ErrConflict",
			userID: 1,
			kind:   domain.KindAd,
			amount: 5,
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "40001"}).Times(4)
			},
			expectedError: ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			wallet, err := service.Credit(context.Background(), tt.userID, tt.kind, tt.amount, "test")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, wallet.ORBalance)
			}
		})
	}
}

func TestCreditAccumulates(t *testing.T) {
	service, walletRepo, ledgerRepo, quotaRepo, _, txManager := NewMock(t)

	wallet := &domain.Wallet{UserID: 1, ORBalance: 0}
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).Times(3)
	walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(wallet, nil).Times(3)
	walletRepo.EXPECT().UpdateBalances(gomock.Any(), wallet).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
			return w, nil
		}).Times(3)
	ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.EarningTransaction{}, nil).Times(3)
	quotaRepo.EXPECT().Consume(gomock.Any(), 1, domain.KindAd, gomock.Any()).Return(1, nil).Times(3)

	for i := 0; i < 3; i++ {
		_, err := service.Credit(context.Background(), 1, domain.KindAd, 5, "Ad reward")
		assert.NoError(t, err)
	}
	assert.Equal(t, 15.0, wallet.ORBalance)
}

func TestConvert(t *testing.T) {
	service, walletRepo, _, _, _, txManager := NewMock(t)

	tests := []struct {
		name           string
		orAmount       float64
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name:     "Convert at the configured rate",
			orAmount: 1000,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, ORBalance: 1500, INRBalance: 2}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
						return w, nil
					})
			},
			expectedWallet: &domain.Wallet{UserID: 1, ORBalance: 500, INRBalance: 3},
			expectedError:  nil,
		},
		{
			name:          "Below the conversion minimum",
			orAmount:      99,
			prepareMock:   nil,
			expectedError: ErrBelowMinimum,
		},
		{
			name:          "Non-positive amount",
			orAmount:      -5,
			prepareMock:   nil,
			expectedError: ErrInvalidAmount,
		},
		{
			name:     "Insufficient OR balance",
			orAmount: 1000,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, ORBalance: 999}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			wallet, err := service.Convert(context.Background(), 1, tt.orAmount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	service, walletRepo, _, _, withdrawalRepo, txManager := NewMock(t)

	tests := []struct {
		name          string
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Withdraw successfully",
			amount: 3,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, INRBalance: 5}, nil)
				walletRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
						assert.Equal(t, 2.0, w.INRBalance)
						return w, nil
					})
				withdrawalRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).Return(&domain.Withdrawal{}, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Insufficient INR balance",
			amount: 10,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, INRBalance: 5}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:          "Non-positive amount",
			amount:        0,
			prepareMock:   nil,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Withdraw(context.Background(), 1, "4561261212345467", tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	service, _, ledgerRepo, _, _, _ := NewMock(t)

	txns := []domain.EarningTransaction{
		{UserID: 1, Amount: 5, Kind: domain.KindAd},
		{UserID: 1, Amount: 10, Kind: domain.KindCaptcha},
	}
	ledgerRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(txns, nil)

	got, err := service.GetTransactions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, txns, got)
}

func TestGetWithdrawals(t *testing.T) {
	service, _, _, _, withdrawalRepo, _ := NewMock(t)

	withdrawalRepo.EXPECT().GetWithdrawalsByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))

	_, err := service.GetWithdrawals(context.Background(), 1)
	assert.Error(t, err)
}
