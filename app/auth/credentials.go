package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks submitted admin credentials against the
// configured pair. Comparison time does not depend on where the first
// mismatching character occurs.
type CredentialVerifier struct {
	username     string
	password     string
	passwordHash string
}

// NewCredentialVerifier builds a verifier from config. When passwordHash
// is non-empty it takes precedence over the plain password.
func NewCredentialVerifier(username, password, passwordHash string) *CredentialVerifier {
	return &CredentialVerifier{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
	}
}

func (v *CredentialVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	var passOK bool
	if v.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	}

	return userOK && passOK
}
