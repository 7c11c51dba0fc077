package authservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	SetReferredBy(ctx context.Context, userID, referrerID int) (bool, error)
	IncrementReferralCount(ctx context.Context, userID int) error
}

type ReferralRepo interface {
	Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error)
}

type WalletService interface {
	CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Credit(ctx context.Context, userID int, kind domain.ActivityKind, amount float64, description string) (*domain.Wallet, error)
}

type Service struct {
	userRepo      Repo
	referralRepo  ReferralRepo
	walletService WalletService
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
	referralBonus float64
}

func New(repo Repo, referralRepo ReferralRepo, walletService WalletService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, referralBonus float64) *Service {
	return &Service{
		userRepo:      repo,
		referralRepo:  referralRepo,
		walletService: walletService,
		hashService:   hashService,
		jwtService:    jwtService,
		referralBonus: referralBonus,
	}
}

func (s *Service) Register(ctx context.Context, login, password, displayName, referralCode string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, errors.New("username already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
		ReferralCode: newReferralCode(),
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.walletService.CreateWallet(ctx, newUser.ID)
	if err != nil {
		zap.L().Error("can't create wallet: ", zap.Error(err))
		return nil, err
	}

	if referralCode != "" {
		s.redeemReferral(ctx, newUser, referralCode)
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return user, nil
}

// redeemReferral links the new account to its referrer and credits the
// referrer's bonus through the ledger. An invalid or self-referencing code
// never blocks the signup; a user can be referred at most once.
func (s *Service) redeemReferral(ctx context.Context, user *domain.User, referralCode string) {
	referrer, err := s.userRepo.FindByReferralCode(ctx, strings.ToUpper(referralCode))
	if err != nil {
		zap.L().Error("can't look up referral code", zap.Error(err))
		return
	}
	if referrer == nil || referrer.ID == user.ID {
		zap.L().Info("referral code not redeemable", zap.String("code", referralCode))
		return
	}

	linked, err := s.userRepo.SetReferredBy(ctx, user.ID, referrer.ID)
	if err != nil {
		zap.L().Error("can't link referral", zap.Error(err))
		return
	}
	if !linked {
		zap.L().Info("user already referred", zap.Int("userID", user.ID))
		return
	}

	referral := &domain.Referral{
		ReferrerUID:  referrer.ID,
		ReferredUID:  user.ID,
		ReferralCode: referrer.ReferralCode,
		ReferralDate: time.Now(),
		Claimed:      true,
	}
	if _, err := s.referralRepo.Create(ctx, referral); err != nil {
		zap.L().Error("can't save referral record", zap.Error(err))
		return
	}
	if err := s.userRepo.IncrementReferralCount(ctx, referrer.ID); err != nil {
		zap.L().Error("can't increment referral count", zap.Error(err))
	}
	if _, err := s.walletService.Credit(ctx, referrer.ID, domain.KindReferral, s.referralBonus, "Referral bonus"); err != nil {
		zap.L().Error("can't credit referral bonus", zap.Error(err))
	}
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func newReferralCode() string {
	buf := make([]byte, 4)
	rand.Read(buf)
	return strings.ToUpper(hex.EncodeToString(buf))
}
