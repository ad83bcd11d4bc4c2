package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	ok, err := Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("original password")
	require.NoError(t, err)

	ok, err := Verify("different password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_InvalidHash(t *testing.T) {
	_, err := Verify("anything", "not-a-bcrypt-hash")
	assert.Error(t, err)
}

func TestHash_Unique(t *testing.T) {
	first, err := Hash("same input")
	require.NoError(t, err)
	second, err := Hash("same input")
	require.NoError(t, err)

	// bcrypt salts, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
}
