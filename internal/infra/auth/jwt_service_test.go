package auth

import (
	"testing"
	"time"

	"quicksell/config"
	"quicksell/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndParseTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()

	pair, err := jwtService.IssueTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	accessClaims, err := jwtService.ParseToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, userID.String(), accessClaims.Subject)

	refreshClaims, err := jwtService.ParseToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.EqualError(t, err, "jwt secrets must be provided")
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.ParseToken("clearly-not-a-jwt-token-format")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "another_access_secret_key_very_long_for_testing"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	pair, err := issuer.IssueTokens(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ParseToken(pair.Access)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	srv, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	jwtSrv, ok := srv.(*jwtService)
	require.True(t, ok)

	issuedAt := time.Now().Add(-2 * time.Minute)
	jwtSrv.now = func() time.Time { return issuedAt }
	pair, err := jwtSrv.IssueTokens(uuid.New())
	require.NoError(t, err)

	jwtSrv.now = time.Now
	_, err = jwtSrv.ParseToken(pair.Access)
	assert.Error(t, err)
}
