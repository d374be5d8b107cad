package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rxradar/config"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)

	userID := uuid.New()
	tokenString, err := impl.GenerateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateAccessToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
}

func TestJWTService_ValidateAccessToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-b"))
	require.NoError(t, err)

	tokenString, err := issuer.(*jwtService).GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_WrongSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	// Tokens signed with anything but HMAC must be rejected outright.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}
