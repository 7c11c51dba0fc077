package sessionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	gomock "go.uber.org/mock/gomock"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB, mockTxManager
}

var sessionCols = []string{"id", "user_id", "kind", "state", "fingerprint", "challenge", "solved_count", "ad_slot", "play_seconds", "started_at", "updated_at", "verified_at"}

func sessionRow(startedAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(sessionCols).
		AddRow(7, 1, "ad", "loading", "fp-hash", "", 0, 2, 0, startedAt, startedAt, (*time.Time)(nil))
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	startedAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Session created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO activity_sessions (user_id, kind, state, fingerprint, challenge, ad_slot, started_at, updated_at)")).
					WithArgs(1, domain.KindAd, domain.StateLoading, "fp-hash", "", 2, startedAt).
					WillReturnRows(sessionRow(startedAt))
			},
		},
		{
			name: "In-flight session of this kind exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO activity_sessions (user_id, kind, state, fingerprint, challenge, ad_slot, started_at, updated_at)")).
					WithArgs(1, domain.KindAd, domain.StateLoading, "fp-hash", "", 2, startedAt).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: &pgconn.PgError{Code: "23505"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			session := &domain.ActivitySession{
				UserID:      1,
				Kind:        domain.KindAd,
				State:       domain.StateLoading,
				Fingerprint: "fp-hash",
				AdSlot:      2,
				StartedAt:   startedAt,
			}
			created, err := repo.Create(context.Background(), session)
			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.True(t, pg.IsUniqueViolation(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	startedAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		found     bool
	}{
		{
			name: "Session found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM activity_sessions")).
					WithArgs(7).
					WillReturnRows(sessionRow(startedAt))
			},
			found: true,
		},
		{
			name: "Session missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM activity_sessions")).
					WithArgs(7).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			session, err := repo.GetByID(context.Background(), 7)
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, 7, session.ID)
				assert.Equal(t, domain.KindAd, session.Kind)
			} else {
				assert.Nil(t, session)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_TransitionState(t *testing.T) {
	repo, mock, _ := NewMock(t)
	from := []domain.SessionState{domain.StateLoading, domain.StateActive, domain.StateAwaitingClaim}

	tests := []struct {
		name      string
		mockSetup func()
		won       bool
	}{
		{
			name: "Transition won",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET state = $1, updated_at = NOW()")).
					WithArgs(domain.StateVerifying, 7, []string{"loading", "active", "awaiting_claim"}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			won: true,
		},
		{
			name: "Session already settled",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET state = $1, updated_at = NOW()")).
					WithArgs(domain.StateVerifying, 7, []string{"loading", "active", "awaiting_claim"}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			won: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			won, err := repo.TransitionState(context.Background(), 7, from, domain.StateVerifying)
			assert.NoError(t, err)
			assert.Equal(t, tt.won, won)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateChallenge(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
	mock.ExpectExec(regexp.QuoteMeta("SET challenge = $1, solved_count = $2, state = $3")).
		WithArgs("XY34ZW", 4, domain.StateActive, 8).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateChallenge(context.Background(), 8, "XY34ZW", 4, domain.StateActive)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkCredited(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Session credited",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET state = $1, play_seconds = $2, verified_at = NOW()")).
					WithArgs(domain.StateCredited, 360, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET state = $1, play_seconds = $2, verified_at = NOW()")).
					WithArgs(domain.StateCredited, 360, 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkCredited(context.Background(), 7, 360)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindExpired(t *testing.T) {
	repo, mock, _ := NewMock(t)
	startedAt := time.Now().Add(-time.Hour)
	before := time.Now().Add(-10 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE kind = $1 AND started_at < $2")).
		WithArgs(domain.KindAd, before, 1000).
		WillReturnRows(sessionRow(startedAt))

	sessions, err := repo.FindExpired(context.Background(), domain.KindAd, before, 1000)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, 7, sessions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
