package services

import (
	"testing"
	"time"

	"innpilot/config"
	"innpilot/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService() *TokenService {
	return NewTokenService(config.Config{
		JWTSecret:          "test-secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testTokenService()
	claims := UserClaims{UserID: 42, Role: constants.RoleManager, HotelID: 7}

	token, err := svc.Generate(claims, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, claims, parsed)
}

func TestTokenRefreshRoundTrip(t *testing.T) {
	svc := testTokenService()
	claims := UserClaims{UserID: 1, Role: constants.RoleSuperAdmin, HotelID: 3}

	token, err := svc.Generate(claims, false)
	require.NoError(t, err)

	parsed, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, claims, parsed)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := testTokenService().Generate(UserClaims{UserID: 1, Role: 1, HotelID: 1}, true)
	require.NoError(t, err)

	other := NewTokenService(config.Config{
		JWTSecret:          "different-secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
	})
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenExpiredRejected(t *testing.T) {
	svc := NewTokenService(config.Config{
		JWTSecret:          "test-secret",
		AccessTokenExpiry:  -time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	})
	token, err := svc.Generate(UserClaims{UserID: 1, Role: 1, HotelID: 1}, true)
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := testTokenService().Parse("not.a.token")
	assert.Error(t, err)
}
