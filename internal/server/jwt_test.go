package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-ranker/internal/config"
)

func setupTestJWTService(_ *testing.T, expirationHours int) *JWTService {
	cfg := &config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: expirationHours,
	}
	return NewJWTService(cfg)
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := setupTestJWTService(t, 24)
	clientID := uuid.New()

	token, err := service.GenerateToken(clientID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Test token format is valid JWT (three parts separated by dots)
	parts := strings.Split(token, ".")
	assert.Equal(t, 3, len(parts), "JWT should have 3 parts separated by dots")
}

func TestJWTService_GenerateToken_ContainsClientID(t *testing.T) {
	service := setupTestJWTService(t, 24)
	clientID := uuid.New()

	token, err := service.GenerateToken(clientID)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.ClientID)
	assert.Equal(t, clientID, claims.GetClientID())
}

func TestJWTService_ValidateToken_Empty(t *testing.T) {
	service := setupTestJWTService(t, 24)

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	service := setupTestJWTService(t, 24)

	_, err := service.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := setupTestJWTService(t, 24)
	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-secret-also-32-bytes!",
		ExpirationHours: 24,
	})

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := setupTestJWTService(t, 24)

	// Craft an already-expired token with the same secret
	claims := &Claims{
		ClientID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-secret-key-for-jwt-signing-minimum-32-bytes"))
	require.NoError(t, err)

	_, err = service.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsUnsignedAlg(t *testing.T) {
	service := setupTestJWTService(t, 24)

	claims := &Claims{ClientID: uuid.New()}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(tokenString)
	assert.Error(t, err, "alg=none tokens must be rejected")
}
