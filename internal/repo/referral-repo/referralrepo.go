package referralrepo

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

func (r *Repository) Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error) {
	query := `
		INSERT INTO referrals (referrer_uid, referred_uid, referral_code, referral_date, claimed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		referral.ReferrerUID, referral.ReferredUID, referral.ReferralCode, referral.ReferralDate, referral.Claimed).
		Scan(&referral.ID)
	if err != nil {
		zap.L().Error("can't save referral", zap.Error(err))
		return nil, err
	}
	return referral, nil
}

func (r *Repository) FindByReferredUID(ctx context.Context, referredUID int) (*domain.Referral, error) {
	query := `
        SELECT id, referrer_uid, referred_uid, referral_code, referral_date, claimed
        FROM referrals
        WHERE referred_uid = $1
    `
	row := r.db.QueryRow(ctx, query, referredUID)
	var referral domain.Referral
	err := row.Scan(&referral.ID, &referral.ReferrerUID, &referral.ReferredUID,
		&referral.ReferralCode, &referral.ReferralDate, &referral.Claimed)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find referral", zap.Error(err))
		return nil, err
	}
	return &referral, nil
}

func (r *Repository) GetByReferrerUID(ctx context.Context, referrerUID int) ([]domain.Referral, error) {
	query := `
        SELECT id, referrer_uid, referred_uid, referral_code, referral_date, claimed
        FROM referrals
        WHERE referrer_uid = $1
        ORDER BY referral_date DESC
    `
	rows, err := r.db.Query(ctx, query, referrerUID)
	if err != nil {
		zap.L().Error("failed to fetch referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var ref domain.Referral
		err := rows.Scan(&ref.ID, &ref.ReferrerUID, &ref.ReferredUID, &ref.ReferralCode, &ref.ReferralDate, &ref.Claimed)
		if err != nil {
			zap.L().Error("failed to scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, ref)
	}

	return referrals, nil
}
