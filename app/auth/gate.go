package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the single cookie holding the admin session token.
const SessionCookieName = "admin_session"

// Gate extracts a session token from the request cookie and validates it.
// It is the only thing standing between a request and the admin surface.
type Gate struct {
	codec *TokenCodec
}

func NewGate(codec *TokenCodec) *Gate {
	return &Gate{codec: codec}
}

// Authenticate returns the admin identity carried by the request, if any.
// A missing cookie short-circuits without touching the codec.
func (g *Gate) Authenticate(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return g.codec.Validate(cookie.Value)
}

// SetSessionCookie issues a token for identity and attaches it to the
// response.
func (g *Gate) SetSessionCookie(w http.ResponseWriter, identity string) error {
	token, err := g.codec.Issue(identity)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (g *Gate) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
