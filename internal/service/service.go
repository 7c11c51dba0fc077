package service

import (
	"github.com/orbitads/orwallet/internal/handlers/activity"
	"github.com/orbitads/orwallet/internal/handlers/auth"
	"github.com/orbitads/orwallet/internal/handlers/recommend"
	"github.com/orbitads/orwallet/internal/handlers/wallet"

	pkgauth "github.com/orbitads/orwallet/pkg/auth"
	"github.com/orbitads/orwallet/pkg/clients"

	"github.com/orbitads/orwallet/internal/config"
	"github.com/orbitads/orwallet/internal/confirm"
	"github.com/orbitads/orwallet/internal/pg"
	"github.com/orbitads/orwallet/internal/repo"
	activityservice "github.com/orbitads/orwallet/internal/service/activityservice"
	authservice "github.com/orbitads/orwallet/internal/service/authservice"
	quotaservice "github.com/orbitads/orwallet/internal/service/quotaservice"
	recommendservice "github.com/orbitads/orwallet/internal/service/recommendservice"
	walletservice "github.com/orbitads/orwallet/internal/service/walletservice"
)

type Services struct {
	AuthService      auth.Service
	WalletService    wallet.Service
	ActivityService  activity.Service
	RecommendService recommend.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, httpClient clients.HTTPClientI) *Services {
	walletService := walletservice.New(
		repo.WalletRepo, repo.LedgerRepo, repo.QuotaRepo, repo.WithdrawalRepo,
		txManager, cfg.ConversionRate, cfg.MinConversion,
	)
	quotaService := quotaservice.New(repo.QuotaRepo)
	activityService := activityservice.New(
		repo.SessionRepo, quotaService, walletService, repo.UserRepo,
		&pkgauth.ClaimTokenService{}, confirm.New(cfg, httpClient),
	)
	authService := authservice.New(
		repo.UserRepo, repo.ReferralRepo, walletService,
		&pkgauth.HashService{}, &pkgauth.JWTService{}, cfg.ReferralBonus,
	)
	recommendService := recommendservice.New(cfg, httpClient, walletService)

	return &Services{
		AuthService:      authService,
		WalletService:    walletService,
		ActivityService:  activityService,
		RecommendService: recommendService,
	}
}
