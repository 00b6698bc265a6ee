package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := IssueSessionToken(42, true)
	require.NoError(t, err)

	session, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), session.UserID)
	assert.True(t, session.HasOnboarded)
}

func TestParseSessionTokenRejectsTampering(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	token, err := IssueSessionToken(42, false)
	require.NoError(t, err)

	_, err = ParseSessionToken(token + "x")
	assert.Error(t, err)

	_, err = ParseSessionToken("not-a-jwt")
	assert.Error(t, err)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	token, err := IssueSessionToken(42, false)
	require.NoError(t, err)

	t.Setenv("SESSION_SECRET", "other-secret")
	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenRequiresSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	_, err := IssueSessionToken(1, false)
	assert.Error(t, err)
}
