package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialVerifierPlainPassword(t *testing.T) {
	verifier := NewCredentialVerifier("admin", "s3cret", "")

	assert.True(t, verifier.Verify("admin", "s3cret"))
	assert.False(t, verifier.Verify("admin", "wrong"))
	assert.False(t, verifier.Verify("wrong", "s3cret"))
	assert.False(t, verifier.Verify("", ""))
	assert.False(t, verifier.Verify("admin", "s3cret "))
}

func TestCredentialVerifierHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := NewCredentialVerifier("admin", "", string(hash))

	assert.True(t, verifier.Verify("admin", "s3cret"))
	assert.False(t, verifier.Verify("admin", "wrong"))
	assert.False(t, verifier.Verify("other", "s3cret"))
}
