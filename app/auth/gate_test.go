package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateAuthenticate(t *testing.T) {
	codec := NewTokenCodec("test-secret")
	gate := NewGate(codec)

	t.Run("no cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		_, ok := gate.Authenticate(r)
		assert.False(t, ok)
	})

	t.Run("valid cookie", func(t *testing.T) {
		token, err := codec.Issue("admin")
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

		identity, ok := gate.Authenticate(r)
		assert.True(t, ok)
		assert.Equal(t, "admin", identity)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-token"})

		_, ok := gate.Authenticate(r)
		assert.False(t, ok)
	})
}

func TestGateSetSessionCookie(t *testing.T) {
	gate := NewGate(NewTokenCodec("test-secret"))

	w := httptest.NewRecorder()
	require.NoError(t, gate.SetSessionCookie(w, "admin"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)

	// The issued value must round-trip through the gate.
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(cookie)
	identity, ok := gate.Authenticate(r)
	assert.True(t, ok)
	assert.Equal(t, "admin", identity)
}

func TestGateClearSessionCookie(t *testing.T) {
	gate := NewGate(NewTokenCodec("test-secret"))

	w := httptest.NewRecorder()
	gate.ClearSessionCookie(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
