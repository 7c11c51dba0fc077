package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateClaimToken(t *testing.T) {
	service := &ClaimTokenService{}

	token, err := service.GenerateClaimToken(42, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateClaimToken(t *testing.T) {
	service := &ClaimTokenService{}

	tests := []struct {
		name        string
		setup       func() string
		expectedID  int
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := service.GenerateClaimToken(42, time.Hour)
				return token
			},
			expectedID: 42,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := service.GenerateClaimToken(42, -time.Hour)
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Token",
			setup: func() string {
				return "invalid.token.string"
			},
			expectError: true,
		},
		{
			name: "User Token Is Not A Claim Token",
			setup: func() string {
				jwtService := &JWTService{}
				token, _ := jwtService.GenerateJWT(42, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
					SessionID: 42,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				})
				signed, _ := token.SignedString(secretKey)
				return signed
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionID, err := service.ValidateClaimToken(tt.setup())

			if tt.expectError {
				assert.Error(t, err)
				assert.Zero(t, sessionID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, sessionID)
			}
		})
	}
}
