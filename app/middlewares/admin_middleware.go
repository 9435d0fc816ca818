package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/karnaval-obuv/shop/app/auth"
	"github.com/karnaval-obuv/shop/app/helpers"
)

// RequireAdmin is the single gate in front of every admin route except
// login itself. Unauthenticated requests get a redirect to the login page
// with an unauthorized status.
func RequireAdmin(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := gate.Authenticate(r)
			if !ok {
				log.Printf("RequireAdmin: unauthenticated request to %s", r.URL.Path)
				w.Header().Set("Location", "/admin/login")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyAdmin, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
