package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, VerifyPassword("correct horse battery", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("correct horse battery", "not-a-hash"))
}

func TestTokenIssueVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenVerifyRejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	other := NewTokenIssuer("different-secret", time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)

	_, err = issuer.Verify("not.a.token")
	assert.Error(t, err)

	expired := NewTokenIssuer("secret", -time.Minute)
	token, err = expired.Issue("user-123")
	require.NoError(t, err)
	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

type usernameCheckerFunc func(ctx context.Context, username string) (bool, error)

func (f usernameCheckerFunc) UsernameExists(ctx context.Context, username string) (bool, error) {
	return f(ctx, username)
}

func TestGenerateUsername(t *testing.T) {
	username, err := GenerateUsername(context.Background(), usernameCheckerFunc(
		func(ctx context.Context, username string) (bool, error) { return false, nil },
	))
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(username, "_")))
}

func TestGenerateUsernameRetries(t *testing.T) {
	var seen []string
	username, err := GenerateUsername(context.Background(), usernameCheckerFunc(
		func(ctx context.Context, username string) (bool, error) {
			seen = append(seen, username)
			// Force one retry by claiming the first candidate is taken.
			return len(seen) == 1, nil
		},
	))
	require.NoError(t, err)
	assert.Equal(t, seen[len(seen)-1], username)
	assert.GreaterOrEqual(t, len(seen), 2)
}
