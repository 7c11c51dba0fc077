package ledgerrepo

import (
	"context"

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

// Create appends one immutable earning record. Rows are never updated or
// deleted afterwards.
func (r *Repository) Create(ctx context.Context, txn *domain.EarningTransaction) (*domain.EarningTransaction, error) {
	query := `
		INSERT INTO earning_transactions (user_id, amount, kind, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, txn.UserID, txn.Amount, txn.Kind, txn.Description, txn.CreatedAt).Scan(&txn.ID)
	if err != nil {
		zap.L().Error("can't save earning transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.EarningTransaction, error) {
	query := `
        SELECT id, user_id, amount, kind, description, created_at
        FROM earning_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch earning transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.EarningTransaction
	for rows.Next() {
		var txn domain.EarningTransaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Amount, &txn.Kind, &txn.Description, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan earning transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}
