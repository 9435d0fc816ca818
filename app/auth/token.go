package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long an issued admin session stays valid. There is no
// server-side revocation: a token lives until natural expiry.
const SessionTTL = 24 * time.Hour

// TokenCodec issues and validates the signed session tokens carried in the
// admin cookie. Tokens are HS256-signed and expire SessionTTL after
// issuance.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    SessionTTL,
		now:    time.Now,
	}
}

func (c *TokenCodec) Issue(identity string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   identity,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Validate returns the identity bound into the token. Tampered and expired
// tokens both come back as not ok; callers cannot tell the two apart.
func (c *TokenCodec) Validate(tokenString string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return c.secret, nil
		},
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
