package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret")

	token, err := m.GenerateAccessToken("ops", RoleWriter, time.Hour)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, RoleWriter, claims.Role)
}

func TestManager_Rejects(t *testing.T) {
	m := NewManager("secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewManager("other").GenerateAccessToken("ops", RoleWriter, time.Hour)
		require.NoError(t, err)

		_, err = m.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		defer func() { m.now = time.Now }()

		token, err := m.GenerateAccessToken("ops", RoleWriter, time.Hour)
		require.NoError(t, err)

		_, err = m.ValidateAccessToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("not an access token", func(t *testing.T) {
		claims := Claims{Type: "refresh", RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.ValidateAccessToken("not-a-token")
		assert.Error(t, err)
	})
}
