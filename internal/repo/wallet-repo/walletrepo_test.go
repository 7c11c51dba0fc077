package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/orbitads/orwallet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var walletColumns = []string{"id", "user_id", "or_balance", "inr_balance", "wallet_address"}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name: "Wallet found",
			mockSetup: func() {
				rows := pgxmock.NewRows(walletColumns).
					AddRow(1, 1, 500.5, 0.5, "OR3f2a9c")
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallets")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Wallet{ID: 1, UserID: 1, ORBalance: 500.5, INRBalance: 0.5, WalletAddress: "OR3f2a9c"},
		},
		{
			name: "No wallet row",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallets")).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallets")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(walletColumns).
		AddRow(1, 1, 500.5, 0.5, "OR3f2a9c")
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(rows)

	wallet, err := repo.GetForUpdate(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 500.5, wallet.ORBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Wallet created with zero balances",
			mockSetup: func() {
				rows := pgxmock.NewRows(walletColumns).
					AddRow(1, 1, 0.0, 0.0, "OR3f2a9c")
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallets (user_id, or_balance, inr_balance, wallet_address)")).
					WithArgs(1, "OR3f2a9c").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallets (user_id, or_balance, inr_balance, wallet_address)")).
					WithArgs(1, "OR3f2a9c").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			wallet, err := repo.Create(context.Background(), 1, "OR3f2a9c")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, wallet.ORBalance)
				assert.Equal(t, 0.0, wallet.INRBalance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateBalances(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		wallet    *domain.Wallet
		mockSetup func()
		expectErr bool
	}{
		{
			name:   "Balances updated",
			wallet: &domain.Wallet{UserID: 1, ORBalance: 505.5, INRBalance: 0.5},
			mockSetup: func() {
				rows := pgxmock.NewRows(walletColumns).
					AddRow(1, 1, 505.5, 0.5, "OR3f2a9c")
				mock.ExpectQuery(regexp.QuoteMeta("SET or_balance = $1, inr_balance = $2")).
					WithArgs(505.5, 0.5, 1).
					WillReturnRows(rows)
			},
		},
		{
			name:   "Database error",
			wallet: &domain.Wallet{UserID: 1, ORBalance: 505.5, INRBalance: 0.5},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET or_balance = $1, inr_balance = $2")).
					WithArgs(505.5, 0.5, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdateBalances(context.Background(), tt.wallet)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 505.5, updated.ORBalance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
