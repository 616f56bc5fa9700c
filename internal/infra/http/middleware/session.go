package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/policy"
)

type roleKey struct{}

// TokenParser turns a bearer token into the desk role it was issued for.
type TokenParser interface {
	Parse(token string) (entity.Role, error)
}

func WithRole(ctx context.Context, role entity.Role) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

func RoleFrom(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(roleKey{}).(entity.Role)
	return role, ok
}

// Session rejects requests without a valid bearer token.
func Session(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				deny(w, http.StatusUnauthorized, "SESSION_REQUIRED", "a desk session is required")
				return
			}

			role, err := parser.Parse(strings.TrimSpace(token))
			if err != nil {
				deny(w, http.StatusUnauthorized, "INVALID_SESSION", "session token is invalid or expired")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}

// RequireView lets the request through only when the session role may
// open view. It must run after Session.
func RequireView(view entity.View) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFrom(r.Context())
			if !ok {
				deny(w, http.StatusUnauthorized, "SESSION_REQUIRED", "a desk session is required")
				return
			}
			if !policy.CanView(role, view) {
				deny(w, http.StatusForbidden, "VIEW_FORBIDDEN", string(role)+" cannot open "+view.Label())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": code, "message": message})
}
