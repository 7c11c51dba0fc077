package repo

import (
	"github.com/orbitads/orwallet/internal/pg"
	ledgerrepo "github.com/orbitads/orwallet/internal/repo/ledger-repo"
	quotarepo "github.com/orbitads/orwallet/internal/repo/quota-repo"
	referralrepo "github.com/orbitads/orwallet/internal/repo/referral-repo"
	sessionrepo "github.com/orbitads/orwallet/internal/repo/session-repo"
	userrepo "github.com/orbitads/orwallet/internal/repo/user-repo"
	walletrepo "github.com/orbitads/orwallet/internal/repo/wallet-repo"
	withdrawalrepo "github.com/orbitads/orwallet/internal/repo/withdrawal-repo"
)

// Repositories hold the concrete repo implementations; each service narrows
// them down to the interface slice it consumes.
type Repositories struct {
	UserRepo       *userrepo.Repository
	WalletRepo     *walletrepo.Repository
	SessionRepo    *sessionrepo.Repository
	QuotaRepo      *quotarepo.Repository
	LedgerRepo     *ledgerrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	ReferralRepo   *referralrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		WalletRepo:     walletrepo.New(conn),
		SessionRepo:    sessionrepo.New(conn, txManager),
		QuotaRepo:      quotarepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
		ReferralRepo:   referralrepo.New(conn),
	}
}
