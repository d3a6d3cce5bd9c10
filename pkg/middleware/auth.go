package middleware

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/errors"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/httputil"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/logger"
)

type contextKeyType string

const (
	userIDKey contextKeyType = "user_id"
	roleKey   contextKeyType = "role"
)

// Claims represents the token claims extracted by the auth middleware.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenValidator validates a bearer token and returns its claims. The
// concrete JWT logic is injected so this package stays free of signing
// details.
type TokenValidator func(token string) (*Claims, error)

// Auth validates bearer tokens and injects user claims into the context.
func Auth(validate TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, r, apperrors.Unauthorized("missing authorization header"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				writeAuthError(w, r, apperrors.Unauthorized("invalid authorization header format"))
				return
			}

			claims, err := validate(parts[1])
			if err != nil {
				writeAuthError(w, r, apperrors.Unauthorized("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, roleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole checks that the authenticated user has one of the given roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if _, ok := roleSet[role]; !ok {
				writeAuthError(w, r, apperrors.Forbidden("insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the context.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

// RoleFromContext extracts the authenticated user's role from the context.
func RoleFromContext(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey).(string); ok {
		return role
	}
	return ""
}

// writeAuthError answers with the standard error envelope so auth rejections
// look the same as handler errors.
func writeAuthError(w http.ResponseWriter, r *http.Request, err *apperrors.AppError) {
	httputil.WriteJSON(w, err.Status, httputil.Response{
		Error: &httputil.ErrorResponse{
			Code:      err.Code,
			Message:   err.Message,
			RequestID: logger.CorrelationIDFromContext(r.Context()),
		},
	})
}
