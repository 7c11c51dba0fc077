package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// ClaimTokenServiceInterface issues and checks the short-lived tokens handed
// out when an activity session starts. A claim must present the token it was
// issued; the session id inside is the only way to reach the session.
type ClaimTokenServiceInterface interface {
	GenerateClaimToken(sessionID int, ttl time.Duration) (string, error)
	ValidateClaimToken(tokenString string) (int, error)
}

type SessionClaims struct {
	SessionID int `json:"session_id"`
	jwt.StandardClaims
}

type ClaimTokenService struct{}

func (s *ClaimTokenService) GenerateClaimToken(sessionID int, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
			Issuer:    "orwallet-claim",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *ClaimTokenService) ValidateClaimToken(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid claim token")
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.SessionID == 0 || claims.Issuer != "orwallet-claim" {
		return 0, errors.New("invalid claim token claims")
	}

	return claims.SessionID, nil
}
