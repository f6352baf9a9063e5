package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, accessTTL time.Duration) TokenService {
	t.Helper()
	svc, err := NewTokenService(accessTTL, 7*24*time.Hour, "resonate-identity", "resonate-api", false, "", "", "test-secret-key")
	require.NoError(t, err)
	return svc
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	accessToken, refreshToken, err := svc.GenerateTokens("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.NotEmpty(t, claims.TokenID)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
}

func TestTokenService_RejectsWrongKey(t *testing.T) {
	issuer := newTestTokenService(t, time.Hour)
	accessToken, _, err := issuer.GenerateTokens("user-42")
	require.NoError(t, err)

	other, err := NewTokenService(time.Hour, time.Hour, "resonate-identity", "resonate-api", false, "", "", "different-secret")
	require.NoError(t, err)

	_, err = other.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	accessToken, _, err := svc.GenerateTokens("user-42")
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService(time.Hour, time.Hour, "iss", "aud", false, "", "", "")
	assert.Error(t, err)
}
