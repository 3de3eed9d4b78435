package auth

import (
	"testing"
	"time"

	"market/config"
	domainerrors "market/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"type":  "access",
		"roles": []string{"user", "admin"},
	}, testSecret)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": uuid.NewString(),
			"exp": time.Now().Add(time.Minute).Unix(),
		}
	}

	expired := valid()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noExpiry := valid()
	delete(noExpiry, "exp")

	refresh := valid()
	refresh["type"] = "refresh"

	badSubject := valid()
	badSubject["sub"] = "not-a-uuid"

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, valid()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "invalid.token.string"},
		{"wrong secret", signToken(t, valid(), "another_secret")},
		{"expired", signToken(t, expired, testSecret)},
		{"missing expiry", signToken(t, noExpiry, testSecret)},
		{"refresh token", signToken(t, refresh, testSecret)},
		{"subject is not a uuid", signToken(t, badSubject, testSecret)},
		{"unsigned", noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}
