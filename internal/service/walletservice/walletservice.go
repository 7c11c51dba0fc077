package walletservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/internal/pg"
)

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int, walletAddress string) (*domain.Wallet, error)
	UpdateBalances(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, txn *domain.EarningTransaction) (*domain.EarningTransaction, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.EarningTransaction, error)
}

type QuotaRepo interface {
	Consume(ctx context.Context, userID int, kind domain.ActivityKind, day string) (int, error)
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
}

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount below conversion minimum")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrConflict            = errors.New("balance update conflict")
)

const (
	maxConflictRetries = 3
	conflictRetryDelay = 50 * time.Millisecond
)

type Service struct {
	walletRepo     WalletRepo
	ledgerRepo     LedgerRepo
	quotaRepo      QuotaRepo
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager

	conversionRate float64
	minConversion  float64
}

func New(walletRepo WalletRepo, ledgerRepo LedgerRepo, quotaRepo QuotaRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager, conversionRate, minConversion float64) *Service {
	return &Service{
		walletRepo:     walletRepo,
		ledgerRepo:     ledgerRepo,
		quotaRepo:      quotaRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
		conversionRate: conversionRate,
		minConversion:  minConversion,
	}
}

// Day formats t the way quota counters are keyed.
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrAccountNotFound
	}
	return wallet, nil
}

func (s *Service) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Create(ctx, userID, newWalletAddress())
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Credit applies a reward to the OR balance, appends the ledger record and
// consumes today's quota for the kind, all in one transaction over a locked
// wallet row. Transaction conflicts are retried a bounded number of times,
// then surfaced as ErrConflict.
func (s *Service) Credit(ctx context.Context, userID int, kind domain.ActivityKind, amount float64, description string) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var credited *domain.Wallet
	err := s.withConflictRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			wallet, err := s.walletRepo.GetForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			if wallet == nil {
				return ErrAccountNotFound
			}

			wallet.ORBalance += amount
			updated, err := s.walletRepo.UpdateBalances(ctx, wallet)
			if err != nil {
				return err
			}

			txn := &domain.EarningTransaction{
				UserID:      userID,
				Amount:      amount,
				Kind:        kind,
				Description: description,
				CreatedAt:   time.Now(),
			}
			if _, err := s.ledgerRepo.Create(ctx, txn); err != nil {
				return err
			}

			if cfg, ok := domain.ConfigFor(kind); ok && cfg.DailyLimit > 0 {
				if _, err := s.quotaRepo.Consume(ctx, userID, kind, Day(time.Now())); err != nil {
					return err
				}
			}

			credited = updated
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("reward credited",
		zap.Int("userID", userID),
		zap.String("kind", string(kind)),
		zap.Float64("amount", amount),
	)
	return credited, nil
}

// Convert moves value from the OR balance to the INR balance at the
// configured rate. Deduction and credit are the same atomic write.
func (s *Service) Convert(ctx context.Context, userID int, orAmount float64) (*domain.Wallet, error) {
	if orAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if orAmount < s.minConversion {
		return nil, ErrBelowMinimum
	}

	var converted *domain.Wallet
	err := s.withConflictRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			wallet, err := s.walletRepo.GetForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			if wallet == nil {
				return ErrAccountNotFound
			}
			if wallet.ORBalance < orAmount {
				return ErrInsufficientBalance
			}

			wallet.ORBalance -= orAmount
			wallet.INRBalance += orAmount / s.conversionRate
			converted, err = s.walletRepo.UpdateBalances(ctx, wallet)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return converted, nil
}

// Withdraw deducts from the INR balance and records the withdrawal to the
// given card as one unit of work.
func (s *Service) Withdraw(ctx context.Context, userID int, cardNumber string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return s.withConflictRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			wallet, err := s.walletRepo.GetForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			if wallet == nil {
				return ErrAccountNotFound
			}
			if wallet.INRBalance < amount {
				return ErrInsufficientBalance
			}

			wallet.INRBalance -= amount
			if _, err := s.walletRepo.UpdateBalances(ctx, wallet); err != nil {
				return err
			}

			withdrawal := &domain.Withdrawal{
				UserID:      userID,
				CardNumber:  cardNumber,
				Amount:      amount,
				ProcessedAt: time.Now(),
			}
			_, err = s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal)
			return err
		})
	})
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.EarningTransaction, error) {
	txns, err := s.ledgerRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch earning transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) withConflictRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxConflictRetries, retry.NewConstant(conflictRetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			if pg.IsSerializationFailure(err) {
				zap.L().Warn("balance transaction conflict, retrying", zap.Error(err))
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil && pg.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s", ErrConflict, err)
	}
	return err
}

func newWalletAddress() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return "OR" + hex.EncodeToString(buf)
}
