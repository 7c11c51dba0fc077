package reaper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/orbitads/orwallet/internal/domain"
)

// SessionRepo is the slice of the session store the reaper needs.
type SessionRepo interface {
	FindExpired(ctx context.Context, kind domain.ActivityKind, before time.Time, limit uint32) ([]domain.ActivitySession, error)
	TransitionState(ctx context.Context, id int, from []domain.SessionState, to domain.SessionState) (bool, error)
}

var expiringSessions sync.Map

// Service periodically discards sessions whose claim window closed without a
// claim. That also clears the per-kind in-flight marker, so an abandoned
// game doesn't leave the account mid-session indefinitely.
type Service struct {
	sessionRepo    SessionRepo
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(sessionRepo SessionRepo) *Service {
	return &Service{
		sessionRepo:    sessionRepo,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Minute,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Session reaper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reaper")
			return
		case <-ticker.C:
			s.processExpired(ctx)
		}
	}
}

func (s *Service) processExpired(ctx context.Context) {
	for kind, cfg := range domain.Catalog {
		sessions, err := s.sessionRepo.FindExpired(ctx, kind, time.Now().Add(-cfg.ClaimTTL), s.limit)
		if err != nil {
			zap.L().Error("Failed to fetch expired sessions", zap.Error(err))
			continue
		}

		var g errgroup.Group
		for _, session := range sessions {
			session := session

			if _, loaded := expiringSessions.LoadOrStore(session.ID, struct{}{}); loaded {
				continue
			}

			g.Go(func() error {
				err := s.workerPool.AddTask(ctx, func() error {
					defer expiringSessions.Delete(session.ID)
					return s.expire(ctx, session)
				})
				if err != nil {
					expiringSessions.Delete(session.ID)
					return err
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			zap.L().Error("Error expiring sessions", zap.Error(err))
		}
	}
}

func (s *Service) expire(ctx context.Context, session domain.ActivitySession) error {
	from := []domain.SessionState{domain.StateLoading, domain.StateActive, domain.StateAwaitingClaim, domain.StateVerifying}
	expired, err := s.sessionRepo.TransitionState(ctx, session.ID, from, domain.StateRejected)
	if err != nil {
		return fmt.Errorf("failed to expire session %d: %w", session.ID, err)
	}
	if expired {
		zap.L().Info("Expired stale session",
			zap.Int("sessionID", session.ID),
			zap.String("kind", string(session.Kind)),
		)
	}
	return nil
}
