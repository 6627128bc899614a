package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/infrastructure/config"
)

func testTokenService() *TokenService {
	return NewTokenService(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret-key-for-testing-only-32-bytes",
			JWTExpiration:     time.Hour,
			RefreshExpiration: 24 * time.Hour,
		},
	}, zap.NewNop())
}

func TestTokenRoundtrip(t *testing.T) {
	svc := testTokenService()
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "cook@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", claims.Email)

	parsed, err := claims.ParsedUserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestTokenTypeIsEnforced(t *testing.T) {
	svc := testTokenService()
	userID := uuid.New()

	refresh, err := svc.GenerateRefreshToken(userID, "cook@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(refresh, AccessToken)
	assert.Error(t, err)

	_, err = svc.ValidateToken(refresh, RefreshToken)
	assert.NoError(t, err)
}

func TestTamperedTokenIsRejected(t *testing.T) {
	svc := testTokenService()

	token, err := svc.GenerateAccessToken(uuid.New(), "cook@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token+"x", AccessToken)
	assert.Error(t, err)

	other := NewTokenService(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "a-completely-different-secret-value",
			JWTExpiration: time.Hour,
		},
	}, zap.NewNop())

	_, err = other.ValidateToken(token, AccessToken)
	assert.Error(t, err)
}
