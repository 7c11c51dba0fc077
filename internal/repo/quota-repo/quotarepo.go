package quotarepo

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

func (r *Repository) Get(ctx context.Context, userID int, kind domain.ActivityKind) (*domain.QuotaCounter, error) {
	query := `
        SELECT id, user_id, kind, day, count
        FROM quota_counters
        WHERE user_id = $1 AND kind = $2
    `
	row := r.db.QueryRow(ctx, query, userID, kind)
	var counter domain.QuotaCounter
	err := row.Scan(&counter.ID, &counter.UserID, &counter.Kind, &counter.Day, &counter.Count)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get quota counter", zap.Error(err))
		return nil, err
	}
	return &counter, nil
}

// Consume adds one completion to today's counter. A stored counter from an
// earlier day rolls over to 1 instead of accumulating. Must be called from
// the same transaction that credits the reward, so a failed credit never
// consumes quota.
func (r *Repository) Consume(ctx context.Context, userID int, kind domain.ActivityKind, day string) (int, error) {
	query := `
        INSERT INTO quota_counters (user_id, kind, day, count)
        VALUES ($1, $2, $3, 1)
        ON CONFLICT (user_id, kind) DO UPDATE
        SET count = CASE WHEN quota_counters.day = $3 THEN quota_counters.count + 1 ELSE 1 END,
            day = $3
        RETURNING count
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID, kind, day).Scan(&count); err != nil {
		zap.L().Error("failed to consume quota", zap.Error(err))
		return 0, err
	}
	return count, nil
}
