package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret any, expiresAt time.Time) string {
	t.Helper()

	claims := &domain.Claims{
		UserID:     7,
		UserEmail:  "analyst@example.com",
		UserRoleID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(testSecret)

	t.Run("token válido", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour))

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, 2, claims.UserRoleID)
		assert.Equal(t, "analyst@example.com", claims.UserEmail)
	})

	t.Run("token expirado", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(-time.Hour))

		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("assinatura com outro segredo", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte("other"), time.Now().Add(time.Hour))

		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algoritmo não permitido", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS512, []byte(testSecret), time.Now().Add(time.Hour))

		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token vazio", func(t *testing.T) {
		_, err := service.ValidateToken("")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
