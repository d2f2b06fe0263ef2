package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp *time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{"sub": "uid-1"}
	if exp != nil {
		claims["exp"] = exp.Unix()
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("abc.def.ghi")
	require.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	require.Error(t, err)
}

func TestSessionTokenLive(t *testing.T) {
	now := time.Now()

	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	assert.True(t, SessionTokenLive(signedToken(t, &future), now))
	assert.False(t, SessionTokenLive(signedToken(t, &past), now))
	assert.True(t, SessionTokenLive(signedToken(t, nil), now), "token without exp is trusted to the provider")
	assert.False(t, SessionTokenLive("", now))
	assert.False(t, SessionTokenLive("not-a-jwt", now))
}

func TestParseSessionToken_ExposesClaims(t *testing.T) {
	future := time.Now().Add(time.Hour)
	parsed, err := ParseSessionToken(signedToken(t, &future))
	require.NoError(t, err)

	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "uid-1", sub)
	assert.NotEmpty(t, parsed.String())
}
