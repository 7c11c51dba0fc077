package quotaservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/orbitads/orwallet/internal/domain"
)

type Repo interface {
	Get(ctx context.Context, userID int, kind domain.ActivityKind) (*domain.QuotaCounter, error)
}

type Service struct {
	quotaRepo Repo
}

func New(quotaRepo Repo) *Service {
	return &Service{
		quotaRepo: quotaRepo,
	}
}

// Day formats t the way quota counters are keyed.
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// CheckAllowance reports whether the user may start another activity of the
// given kind today. A counter stored under an earlier day string counts as
// zero: the rollover happens implicitly at first access on a new day.
func (s *Service) CheckAllowance(ctx context.Context, userID int, kind domain.ActivityKind) (bool, error) {
	cfg, ok := domain.ConfigFor(kind)
	if !ok || cfg.DailyLimit == 0 {
		return true, nil
	}

	counter, err := s.quotaRepo.Get(ctx, userID, kind)
	if err != nil {
		zap.L().Error("failed to check allowance", zap.Error(err))
		return false, err
	}

	used := 0
	if counter != nil && counter.Day == Day(time.Now()) {
		used = counter.Count
	}
	return used < cfg.DailyLimit, nil
}

// Used returns today's completion count for the kind.
func (s *Service) Used(ctx context.Context, userID int, kind domain.ActivityKind) (int, error) {
	counter, err := s.quotaRepo.Get(ctx, userID, kind)
	if err != nil {
		return 0, err
	}
	if counter == nil || counter.Day != Day(time.Now()) {
		return 0, nil
	}
	return counter.Count, nil
}
