package middleware

import (
	"net/http"
	"strings"
)

// Auth checks a static bearer token on every request. Token issuance and
// session management live outside this service; the check here only keeps
// unauthenticated callers away from the ledger. An empty token disables the
// middleware.
func Auth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			supplied, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || supplied != token {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"status":"fail","message":"Invalid token"}`))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
