package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_EmptySecret(t *testing.T) {
	_, err := NewService("", "api.test", time.Hour)
	require.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	svc, err := NewService("test-secret", "api.test", time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user-abc123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc123", userID)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, err := NewService("right-secret", "api.test", time.Hour)
	require.NoError(t, err)

	verifier, err := NewService("wrong-secret", "api.test", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user-abc123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	svc, err := NewService("test-secret", "api.test", -time.Minute)
	require.NoError(t, err)

	token, err := svc.Issue("user-abc123")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_Malformed(t *testing.T) {
	svc, err := NewService("test-secret", "api.test", time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiry(t *testing.T) {
	svc, err := NewService("test-secret", "api.test", 7*24*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.Expiry())
}
