package services

import (
	"testing"
	"time"

	"techsphere-api/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService([]byte("secret"), 5*24*time.Hour)
	user := &models.User{ID: 42, Username: "alice", IsAdmin: true}

	signed, err := tokens.Issue(user)
	require.NoError(t, err)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(5*24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	caller := claims.Caller()
	assert.Equal(t, uint(42), caller.UserID)
	assert.True(t, caller.IsAdmin)
}

func TestTokenRejected(t *testing.T) {
	user := &models.User{ID: 1, Username: "bob"}

	expired, err := NewTokenService([]byte("secret"), -time.Hour).Issue(user)
	require.NoError(t, err)

	foreign, err := NewTokenService([]byte("other"), time.Hour).Issue(user)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tokens := NewTokenService([]byte("secret"), time.Hour)
	for name, token := range map[string]string{
		"expired": expired,
		"foreign": foreign,
		"none":    unsigned,
		"garbage": "not.a.token",
	} {
		_, err := tokens.Verify(token)
		var unauthorized models.ErrorUnauthorized
		require.ErrorAs(t, err, &unauthorized, name)
		assert.Equal(t, models.MessageInvalidToken, unauthorized.Message, name)
	}
}

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(4)

	hash, err := hasher.Hash("Secret1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1!", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)

	assert.True(t, hasher.Verify("Secret1!", hash))
	assert.False(t, hasher.Verify("Secret2!", hash))
}
