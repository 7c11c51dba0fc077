package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, or_balance, inr_balance, wallet_address
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.ORBalance, &wallet.INRBalance, &wallet.WalletAddress)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// GetForUpdate locks the wallet row for the rest of the enclosing
// transaction. Every balance mutation must read through this method so that
// two concurrent claims can't both compute from the same stale balance.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, or_balance, inr_balance, wallet_address
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.ORBalance, &wallet.INRBalance, &wallet.WalletAddress)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, userID int, walletAddress string) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, or_balance, inr_balance, wallet_address)
        VALUES ($1, 0, 0, $2)
        RETURNING id, user_id, or_balance, inr_balance, wallet_address
    `
	row := r.db.QueryRow(ctx, query, userID, walletAddress)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.ORBalance, &wallet.INRBalance, &wallet.WalletAddress)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) UpdateBalances(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	var updated domain.Wallet
	query := `
		UPDATE wallets
		SET or_balance = $1, inr_balance = $2
		WHERE user_id = $3
		RETURNING id, user_id, or_balance, inr_balance, wallet_address
	`
	row := r.db.QueryRow(ctx, query, wallet.ORBalance, wallet.INRBalance, wallet.UserID)
	err := row.Scan(&updated.ID, &updated.UserID, &updated.ORBalance, &updated.INRBalance, &updated.WalletAddress)
	if err != nil {
		zap.L().Error("failed to update wallet balances", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
