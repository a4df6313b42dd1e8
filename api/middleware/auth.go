package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
	"github.com/codeclash-oj/codeclash/pkg/jwt"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	roleKey   contextKey = "role"
)

// UserID returns the authenticated user from the request context.
func UserID(ctx context.Context) (sharedtypes.UserID, bool) {
	id, ok := ctx.Value(userIDKey).(sharedtypes.UserID)
	return id, ok
}

// Role returns the authenticated role from the request context.
func Role(ctx context.Context) jwt.Role {
	role, _ := ctx.Value(roleKey).(jwt.Role)
	return role
}

// RequireAuth validates the Bearer token and stores the user identity on
// the request context.
func RequireAuth(tokens jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, sharedtypes.UserID(claims.Subject))
			ctx = context.WithValue(ctx, roleKey, jwt.Role(claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose token lacks the admin role. Must be
// mounted after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != jwt.RoleAdmin {
			http.Error(w, "admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
