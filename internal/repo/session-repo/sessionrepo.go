package sessionrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const sessionColumns = `id, user_id, kind, state, fingerprint, challenge, solved_count, ad_slot, play_seconds, started_at, updated_at, verified_at`

func scanSession(row pgx.Row) (*domain.ActivitySession, error) {
	var s domain.ActivitySession
	err := row.Scan(&s.ID, &s.UserID, &s.Kind, &s.State, &s.Fingerprint, &s.Challenge,
		&s.SolvedCount, &s.AdSlot, &s.PlaySeconds, &s.StartedAt, &s.UpdatedAt, &s.VerifiedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new in-flight session. The partial unique index on
// (user_id, kind) rejects a second concurrent session of the same kind;
// callers detect that through pg.IsUniqueViolation.
func (r *Repository) Create(ctx context.Context, session *domain.ActivitySession) (*domain.ActivitySession, error) {
	query := `
        INSERT INTO activity_sessions (user_id, kind, state, fingerprint, challenge, ad_slot, started_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
        RETURNING ` + sessionColumns
	row := r.db.QueryRow(ctx, query,
		session.UserID, session.Kind, session.State, session.Fingerprint,
		session.Challenge, session.AdSlot, session.StartedAt)
	created, err := scanSession(row)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't create activity session", zap.Error(err))
		}
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.ActivitySession, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM activity_sessions
        WHERE id = $1
    `
	session, err := scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get activity session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

// TransitionState moves the session from one of the allowed states to the
// target state. It returns false when the session was not in an allowed
// state, which makes claim verification one-shot: only a single caller can
// win the transition into verifying.
func (r *Repository) TransitionState(ctx context.Context, id int, from []domain.SessionState, to domain.SessionState) (bool, error) {
	query := `
        UPDATE activity_sessions
        SET state = $1, updated_at = NOW()
        WHERE id = $2 AND state = ANY($3)
    `
	states := make([]string, len(from))
	for i, s := range from {
		states[i] = string(s)
	}
	tag, err := r.db.Exec(ctx, query, to, id, states)
	if err != nil {
		zap.L().Error("can't transition session state", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) UpdateChallenge(ctx context.Context, id int, challenge string, solvedCount int, state domain.SessionState) error {
	query := `
        UPDATE activity_sessions
        SET challenge = $1, solved_count = $2, state = $3, updated_at = NOW()
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, challenge, solvedCount, state, id); err != nil {
			zap.L().Error("can't update session challenge", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) MarkCredited(ctx context.Context, id, playSeconds int) error {
	query := `
        UPDATE activity_sessions
        SET state = $1, play_seconds = $2, verified_at = NOW(), updated_at = NOW()
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, domain.StateCredited, playSeconds, id); err != nil {
		zap.L().Error("can't mark session credited", zap.Error(err))
		return err
	}
	return nil
}

// FindExpired returns in-flight sessions whose claim window closed before
// the given cutoffs, one cutoff per kind.
func (r *Repository) FindExpired(ctx context.Context, kind domain.ActivityKind, before time.Time, limit uint32) ([]domain.ActivitySession, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM activity_sessions
        WHERE kind = $1 AND started_at < $2
          AND state IN ('loading', 'active', 'awaiting_claim', 'verifying')
        ORDER BY started_at ASC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, kind, before, int(limit))
	if err != nil {
		zap.L().Error("can't get expired sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.ActivitySession
	for rows.Next() {
		var s domain.ActivitySession
		err := rows.Scan(&s.ID, &s.UserID, &s.Kind, &s.State, &s.Fingerprint, &s.Challenge,
			&s.SolvedCount, &s.AdSlot, &s.PlaySeconds, &s.StartedAt, &s.UpdatedAt, &s.VerifiedAt)
		if err != nil {
			zap.L().Error("can't scan expired session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
