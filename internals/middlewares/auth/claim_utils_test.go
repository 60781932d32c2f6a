package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken(t *testing.T) {
	id := uuid.New()

	t.Run("Should round-trip subject and role", func(t *testing.T) {
		raw, err := IssueAccessToken("k", id, "admin", time.Minute)
		require.NoError(t, err)
		claims, err := ParseAccessToken(raw, "k")
		require.NoError(t, err)
		assert.Equal(t, id.String(), claims.Subject)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		raw, err := IssueAccessToken("k", id, "admin", -time.Minute)
		require.NoError(t, err)
		_, err = ParseAccessToken(raw, "k")
		assert.Error(t, err)
	})

	t.Run("Should reject a non-HMAC algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: id.String()}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = ParseAccessToken(raw, "k")
		assert.Error(t, err)
	})

	t.Run("Should refuse to sign without a secret", func(t *testing.T) {
		_, err := IssueAccessToken("", id, "admin", time.Minute)
		assert.Error(t, err)
	})
}
