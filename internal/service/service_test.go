package service

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/orbitads/orwallet/internal/config"
	"github.com/orbitads/orwallet/internal/pg"
	"github.com/orbitads/orwallet/internal/repo"
	"github.com/orbitads/orwallet/pkg/clients"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockPool, txManager)

	cfg := &config.Config{
		ConversionRate: 1000,
		MinConversion:  100,
		ReferralBonus:  50,
	}

	services := New(cfg, repos, txManager, clients.NewHTTPClient())

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.ActivityService)
	assert.NotNil(t, services.RecommendService)
}
