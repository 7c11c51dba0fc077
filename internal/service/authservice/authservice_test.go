package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockReferralRepo, *MockWalletService, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockRepo(ctrl)
	referralRepo := NewMockReferralRepo(ctrl)
	walletService := NewMockWalletService(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(userRepo, referralRepo, walletService, hashService, jwtService, 50)
	defer ctrl.Finish()
	return service, userRepo, referralRepo, walletService, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, referralRepo, walletService, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		referralCode  string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "newuser",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.Len(t, u.ReferralCode, 8)
						u.ID = 1
						return u, nil
					})
				walletService.EXPECT().CreateWallet(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Registration with a referral code pays the referrer",
			login:    "invited",
			password: "password",

			referralCode: "abcd1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "invited").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						u.ID = 2
						return u, nil
					})
				walletService.EXPECT().CreateWallet(gomock.Any(), 2).Return(&domain.Wallet{UserID: 2}, nil)
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), "ABCD1234").
					Return(&domain.User{ID: 9, ReferralCode: "ABCD1234"}, nil)
				userRepo.EXPECT().SetReferredBy(gomock.Any(), 2, 9).Return(true, nil)
				referralRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Referral{}, nil)
				userRepo.EXPECT().IncrementReferralCount(gomock.Any(), 9).Return(nil)
				walletService.EXPECT().Credit(gomock.Any(), 9, domain.KindReferral, 50.0, gomock.Any()).
					Return(&domain.Wallet{UserID: 9, ORBalance: 50}, nil)
			},
			expectedError: nil,
		},
		{
			name:         "Unknown referral code never blocks the signup",
			login:        "invited2",
			password:     "password",
			referralCode: "NOSUCH00",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "invited2").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						u.ID = 3
						return u, nil
					})
				walletService.EXPECT().CreateWallet(gomock.Any(), 3).Return(&domain.Wallet{UserID: 3}, nil)
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), "NOSUCH00").Return(nil, nil)
			},
			expectedError: nil,
		},
		{
			name:     "User already exists",
			login:    "existinguser",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "existinguser").
					Return(&domain.User{Login: "existinguser"}, nil)
			},
			expectedError: errors.New("username already taken"),
		},
		{
			name:     "Error hashing password",
			login:    "newuser",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating user",
			login:    "newuser",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("creation error"))
			},
			expectedError: errors.New("creation error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Register(context.Background(), tt.login, tt.password, "Display Name", tt.referralCode)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.login, user.Login)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, _, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "user",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").
					Return(&domain.User{ID: 1, Login: "user", PasswordHash: "hashedPassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedPassword", "password").Return(true)
			},
			expectedError: nil,
		},
		{
			name:     "Unknown login",
			login:    "ghost",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedError: errors.New("invalid credentials"),
		},
		{
			name:     "Wrong password",
			login:    "user",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "user").
					Return(&domain.User{ID: 1, Login: "user", PasswordHash: "hashedPassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedPassword", "wrong").Return(false)
			},
			expectedError: errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.login, user.Login)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:   "Token generated",
			userID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.AssignableToTypeOf(time.Time{})).Return("token", nil)
			},
			expectedToken: "token",
		},
		{
			name:   "Generation failure",
			userID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.AssignableToTypeOf(time.Time{})).
					Return("", errors.New("signing error"))
			},
			expectedError: errors.New("signing error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
