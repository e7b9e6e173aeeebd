package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	t.Run("reads role and identity", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"sub":   "ali",
			"email": "ali@example.com",
			"role":  "tutor",
		})

		claims, ok := ParseClaims("Bearer " + raw)
		require.True(t, ok)
		assert.Equal(t, "ali", claims.Username)
		assert.Equal(t, "ali@example.com", claims.Email)
		assert.Equal(t, "TUTOR", claims.Role)
	})

	t.Run("username claim wins over sub", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"username": "ali",
			"sub":      "42",
			"role":     "STUDENT",
		})

		claims, ok := ParseClaims("Bearer " + raw)
		require.True(t, ok)
		assert.Equal(t, "ali", claims.Username)
	})

	t.Run("opaque token is rejected", func(t *testing.T) {
		_, ok := ParseClaims("Bearer not-a-jwt")
		assert.False(t, ok)
	})

	t.Run("empty token is rejected", func(t *testing.T) {
		_, ok := ParseClaims("")
		assert.False(t, ok)
	})

	t.Run("jwt without identity claims is rejected", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{"exp": 9999999999})
		_, ok := ParseClaims("Bearer " + raw)
		assert.False(t, ok)
	})
}
