package userrepo

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, display_name, referral_code, referred_by, referral_count
		FROM users
		WHERE login = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.DisplayName, &user.ReferralCode, &user.ReferredBy, &user.ReferralCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, display_name, referral_code, referred_by, referral_count
		FROM users
		WHERE referral_code = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, code).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.DisplayName, &user.ReferralCode, &user.ReferredBy, &user.ReferralCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by referral code", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, display_name, referral_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.DisplayName, user.ReferralCode).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// SetReferredBy marks the user as referred. The referred_by IS NULL guard
// makes a second redemption a no-op, so a user can be referred at most once.
func (repo *Repository) SetReferredBy(ctx context.Context, userID, referrerID int) (bool, error) {
	query := `
		UPDATE users
		SET referred_by = $1
		WHERE id = $2 AND referred_by IS NULL
	`
	tag, err := repo.db.Exec(ctx, query, referrerID, userID)
	if err != nil {
		zap.L().Error("can't set referrer", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) IncrementReferralCount(ctx context.Context, userID int) error {
	query := `
		UPDATE users
		SET referral_count = referral_count + 1
		WHERE id = $1
	`
	if _, err := repo.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't increment referral count", zap.Error(err))
		return err
	}
	return nil
}

// NextAdSlot advances the per-user ad rotation index and returns the slot to
// serve. Rotation state lives on the user row, threaded through explicitly.
func (repo *Repository) NextAdSlot(ctx context.Context, userID, slots int) (int, error) {
	query := `
		UPDATE users
		SET ad_slot = (ad_slot + 1) % $2
		WHERE id = $1
		RETURNING ad_slot
	`
	var slot int
	if err := repo.db.QueryRow(ctx, query, userID, slots).Scan(&slot); err != nil {
		zap.L().Error("can't advance ad slot", zap.Error(err))
		return 0, err
	}
	return slot, nil
}
