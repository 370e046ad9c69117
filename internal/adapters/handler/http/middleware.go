package http

import (
	"context"
	"net/http"

	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
	"github.com/artakjato/happy-thoughts-api/internal/core/ports"
)

type contextKey string

const UserKey contextKey = "user"

// RequireAuth resolves the bearer token from the Authorization header and
// puts the matching user on the request context. Missing and invalid
// credentials get the same response body.
func RequireAuth(authService ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authService.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, map[string]any{
					"message":   "Authentication missing or invalid.",
					"loggedOut": true,
				})
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFromContext(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(UserKey).(*domain.User)
	return user, ok
}
