package activityservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/internal/pg"
	"github.com/orbitads/orwallet/pkg/auth"
)

type SessionRepo interface {
	Create(ctx context.Context, session *domain.ActivitySession) (*domain.ActivitySession, error)
	GetByID(ctx context.Context, id int) (*domain.ActivitySession, error)
	TransitionState(ctx context.Context, id int, from []domain.SessionState, to domain.SessionState) (bool, error)
	UpdateChallenge(ctx context.Context, id int, challenge string, solvedCount int, state domain.SessionState) error
	MarkCredited(ctx context.Context, id, playSeconds int) error
}

type QuotaService interface {
	CheckAllowance(ctx context.Context, userID int, kind domain.ActivityKind) (bool, error)
}

type WalletService interface {
	Credit(ctx context.Context, userID int, kind domain.ActivityKind, amount float64, description string) (*domain.Wallet, error)
}

type AdRotator interface {
	NextAdSlot(ctx context.Context, userID, slots int) (int, error)
}

type ConfirmClient interface {
	ConfirmPlaytime(ctx context.Context, bearerToken string, minutesPlayed int) error
}

var (
	ErrUnknownKind         = errors.New("unknown activity kind")
	ErrQuotaExceeded       = errors.New("daily quota exceeded")
	ErrSessionActive       = errors.New("another session of this kind is in progress")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotClaimable = errors.New("session is not claimable")
	ErrInvalidToken        = errors.New("invalid claim token")
	ErrTooSoon             = errors.New("minimum engagement time not reached")
	ErrFingerprintMismatch = errors.New("fingerprint mismatch")
	ErrIncorrectChallenge  = errors.New("incorrect challenge answer")
	ErrNotCaptchaSession   = errors.New("session has no challenge to solve")
	ErrConfirmFailed       = errors.New("playtime confirmation failed")
)

type Service struct {
	sessionRepo SessionRepo
	quota       QuotaService
	wallet      WalletService
	rotator     AdRotator
	tokens      auth.ClaimTokenServiceInterface
	confirm     ConfirmClient
}

func New(sessionRepo SessionRepo, quota QuotaService, wallet WalletService, rotator AdRotator, tokens auth.ClaimTokenServiceInterface, confirm ConfirmClient) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		quota:       quota,
		wallet:      wallet,
		rotator:     rotator,
		tokens:      tokens,
		confirm:     confirm,
	}
}

type StartResult struct {
	Token       string
	Challenge   string
	AdURL       string
	WarmupMS    int64
	MinDuration int64
}

type SolveResult struct {
	Challenge string
	Remaining int
}

type ClaimResult struct {
	Wallet *domain.Wallet
	Amount float64
}

// StartSession opens a new earn attempt: checks today's allowance, captures
// the liveness fingerprint and issues the claim token the later claim must
// present. The partial unique index keeps one in-flight session per kind.
func (s *Service) StartSession(ctx context.Context, userID int, kind domain.ActivityKind, signals string) (*StartResult, error) {
	cfg, ok := domain.ConfigFor(kind)
	if !ok {
		return nil, ErrUnknownKind
	}

	allowed, err := s.quota.CheckAllowance(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrQuotaExceeded
	}

	session := &domain.ActivitySession{
		UserID:      userID,
		Kind:        kind,
		State:       domain.StateLoading,
		Fingerprint: Fingerprint(signals),
		StartedAt:   time.Now(),
	}

	if kind == domain.KindCaptcha {
		session.Challenge = newChallenge()
	}
	if kind == domain.KindAd {
		slot, err := s.rotator.NextAdSlot(ctx, userID, cfg.AdSlots)
		if err != nil {
			return nil, err
		}
		session.AdSlot = slot
	}

	created, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrSessionActive
		}
		zap.L().Error("failed to start session", zap.Error(err))
		return nil, err
	}

	token, err := s.tokens.GenerateClaimToken(created.ID, cfg.ClaimTTL)
	if err != nil {
		zap.L().Error("failed to issue claim token", zap.Error(err))
		return nil, err
	}

	zap.L().Info("activity session started",
		zap.Int("userID", userID),
		zap.String("kind", string(kind)),
		zap.Int("sessionID", created.ID),
	)
	return &StartResult{
		Token:       token,
		Challenge:   created.Challenge,
		AdURL:       adURL(kind, created.AdSlot),
		WarmupMS:    cfg.WarmupDelay.Milliseconds(),
		MinDuration: (cfg.WarmupDelay + cfg.MinDuration).Milliseconds(),
	}, nil
}

// Solve checks one captcha answer against the stored challenge. The match is
// case-insensitive and a fresh challenge replaces the old one on every
// attempt, right or wrong, so the same challenge text can never be
// resubmitted. The batch is claimable once every challenge is solved.
func (s *Service) Solve(ctx context.Context, userID int, token, answer string) (*SolveResult, error) {
	session, cfg, err := s.sessionForToken(ctx, userID, token)
	if err != nil {
		return nil, err
	}
	if session.Kind != domain.KindCaptcha {
		return nil, ErrNotCaptchaSession
	}
	if session.State != domain.StateLoading && session.State != domain.StateActive {
		return nil, ErrSessionNotClaimable
	}
	if time.Since(session.StartedAt) < cfg.WarmupDelay {
		return nil, ErrTooSoon
	}

	if !strings.EqualFold(answer, session.Challenge) {
		challenge := newChallenge()
		if err := s.sessionRepo.UpdateChallenge(ctx, session.ID, challenge, session.SolvedCount, domain.StateActive); err != nil {
			return nil, err
		}
		return &SolveResult{Challenge: challenge, Remaining: cfg.BatchSize - session.SolvedCount}, ErrIncorrectChallenge
	}

	solved := session.SolvedCount + 1
	state := domain.StateActive
	challenge := newChallenge()
	if solved >= cfg.BatchSize {
		state = domain.StateAwaitingClaim
		challenge = ""
	}
	if err := s.sessionRepo.UpdateChallenge(ctx, session.ID, challenge, solved, state); err != nil {
		return nil, err
	}
	return &SolveResult{Challenge: challenge, Remaining: cfg.BatchSize - solved}, nil
}

// Claim verifies timing and fingerprint, then credits the reward. The
// transition into verifying is conditional on the stored state, so only one
// claim per session can ever reach the ledger: a replayed token loses the
// transition and gets ErrSessionNotClaimable.
func (s *Service) Claim(ctx context.Context, userID int, token, signals string, minutesPlayed int) (*ClaimResult, error) {
	session, cfg, err := s.sessionForToken(ctx, userID, token)
	if err != nil {
		return nil, err
	}

	from := []domain.SessionState{domain.StateLoading, domain.StateActive, domain.StateAwaitingClaim}
	if session.Kind == domain.KindCaptcha {
		from = []domain.SessionState{domain.StateAwaitingClaim}
	}
	won, err := s.sessionRepo.TransitionState(ctx, session.ID, from, domain.StateVerifying)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, ErrSessionNotClaimable
	}

	if time.Since(session.StartedAt) < cfg.WarmupDelay+cfg.MinDuration {
		s.reject(ctx, session.ID)
		return nil, ErrTooSoon
	}

	if Fingerprint(signals) != session.Fingerprint {
		s.reject(ctx, session.ID)
		zap.L().Warn("fingerprint mismatch on claim",
			zap.Int("userID", userID),
			zap.Int("sessionID", session.ID),
		)
		return nil, ErrFingerprintMismatch
	}

	playSeconds := 0
	if session.Kind == domain.KindGame {
		playSeconds = minutesPlayed * 60
		if time.Duration(playSeconds)*time.Second < cfg.MinDuration {
			s.reject(ctx, session.ID)
			return nil, ErrTooSoon
		}
		bearer, _ := ctx.Value(auth.BearerTokenKey).(string)
		if err := s.confirm.ConfirmPlaytime(ctx, bearer, minutesPlayed); err != nil {
			s.reject(ctx, session.ID)
			zap.L().Error("playtime confirmation failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %s", ErrConfirmFailed, err)
		}
	}

	wallet, err := s.wallet.Credit(ctx, userID, session.Kind, cfg.RewardAmount, rewardDescription(session.Kind))
	if err != nil {
		s.reject(ctx, session.ID)
		return nil, err
	}

	if err := s.sessionRepo.MarkCredited(ctx, session.ID, playSeconds); err != nil {
		zap.L().Error("failed to mark session credited", zap.Error(err))
	}

	zap.L().Info("claim credited",
		zap.Int("userID", userID),
		zap.String("kind", string(session.Kind)),
		zap.Float64("amount", cfg.RewardAmount),
	)
	return &ClaimResult{Wallet: wallet, Amount: cfg.RewardAmount}, nil
}

// Abandon is the early-exit path. It discards the session without a credit
// and clears the in-flight marker; the clear is best-effort and never blocks
// the caller.
func (s *Service) Abandon(ctx context.Context, userID int, token string) error {
	session, _, err := s.sessionForToken(ctx, userID, token)
	if err != nil {
		return err
	}
	if session.State.Terminal() {
		return nil
	}

	from := []domain.SessionState{domain.StateLoading, domain.StateActive, domain.StateAwaitingClaim, domain.StateVerifying}
	if _, err := s.sessionRepo.TransitionState(ctx, session.ID, from, domain.StateRejected); err != nil {
		zap.L().Error("failed to clear abandoned session", zap.Error(err))
	}
	return nil
}

func (s *Service) sessionForToken(ctx context.Context, userID int, token string) (*domain.ActivitySession, domain.ActivityConfig, error) {
	sessionID, err := s.tokens.ValidateClaimToken(token)
	if err != nil {
		return nil, domain.ActivityConfig{}, ErrInvalidToken
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, domain.ActivityConfig{}, err
	}
	if session == nil || session.UserID != userID {
		return nil, domain.ActivityConfig{}, ErrSessionNotFound
	}

	cfg, ok := domain.ConfigFor(session.Kind)
	if !ok {
		return nil, domain.ActivityConfig{}, ErrUnknownKind
	}
	return session, cfg, nil
}

func (s *Service) reject(ctx context.Context, sessionID int) {
	if _, err := s.sessionRepo.TransitionState(ctx, sessionID,
		[]domain.SessionState{domain.StateVerifying}, domain.StateRejected); err != nil {
		zap.L().Error("failed to reject session", zap.Error(err))
	}
}

func rewardDescription(kind domain.ActivityKind) string {
	switch kind {
	case domain.KindAd:
		return "Watched an ad"
	case domain.KindCaptcha:
		return "Solved a captcha batch"
	case domain.KindGame:
		return "Completed a game session"
	default:
		return string(kind)
	}
}

func adURL(kind domain.ActivityKind, slot int) string {
	if kind != domain.KindAd {
		return ""
	}
	return fmt.Sprintf("https://ads.orbitads.net/serve?slot=%d", slot)
}
