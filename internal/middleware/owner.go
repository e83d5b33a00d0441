package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitai/fitai/internal/auth"
)

// RequireOwner returns middleware that allows the request only when the
// route parameter param equals the authenticated user's id.
// Must be applied after Auth middleware.
func RequireOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx := auth.AuthFromContext(r.Context())
			if authCtx == nil {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			if chi.URLParam(r, param) != authCtx.UserID {
				writeError(w, http.StatusForbidden, "FORBIDDEN", "Access to another account is not allowed")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
