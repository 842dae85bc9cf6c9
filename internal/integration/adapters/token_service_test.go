package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(context.Background(), userID, "ana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), token.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateAccessToken(context.Background(), token.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestTokenService_Expired(t *testing.T) {
	issued := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	svc := &tokenService{secret: []byte("s"), duration: time.Minute, now: func() time.Time { return issued }}

	token, err := svc.GenerateAccessToken(context.Background(), uuid.New(), "a@b.co")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateAccessToken(context.Background(), token.Token)
	assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService("right", time.Hour)
	other := NewTokenService("wrong", time.Hour)

	foreign, err := other.GenerateAccessToken(context.Background(), uuid.New(), "a@b.co")
	require.NoError(t, err)

	now := time.Now()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		UserID:    uuid.NewString(),
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	refreshToken, err := refresh.SignedString([]byte("right"))
	require.NoError(t, err)

	badUser := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		UserID:    "not-a-uuid",
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	badUserToken, err := badUser.SignedString([]byte("right"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", foreign.Token},
		{"wrong token type", refreshToken},
		{"invalid user id", badUserToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
		})
	}
}

func TestNewTokenService_DefaultDuration(t *testing.T) {
	svc := NewTokenService("s", 0).(*tokenService)
	assert.Equal(t, defaultAccessTokenDuration, svc.duration)
}
