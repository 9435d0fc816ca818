package middlewares

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/karnaval-obuv/shop/app/helpers"
)

// RequestLogger tags every request with an id and logs method, path,
// and duration once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		ctx := context.WithValue(r.Context(), helpers.ContextKeyRequestID, requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		log.Printf("[%s] %s %s (%s)", requestID[:8], r.Method, r.URL.Path, time.Since(start))
	})
}
