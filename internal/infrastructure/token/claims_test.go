package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("irrelevant-key"))
	require.NoError(t, err)
	return signed
}

func TestPeek(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{
		"tid":   "11111111-2222-3333-4444-555555555555",
		"appid": "client-abc",
		"exp":   exp.Unix(),
	})

	claims, err := Peek(raw)

	require.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", claims.TenantID)
	assert.Equal(t, "client-abc", claims.AppID)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestPeek_MissingClaims(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"aud": "https://graph.microsoft.com"})

	claims, err := Peek(raw)

	require.NoError(t, err)
	assert.Empty(t, claims.TenantID)
	assert.Empty(t, claims.AppID)
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestPeek_NotAJWT(t *testing.T) {
	claims, err := Peek("opaque-not-a-jwt")

	assert.Nil(t, claims)
	assert.Error(t, err)
}
