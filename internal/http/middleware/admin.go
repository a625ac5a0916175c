package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cafedelight/menu-backend/internal/auth"
	"github.com/cafedelight/menu-backend/internal/http/response"
	"github.com/cafedelight/menu-backend/internal/logger"
)

type ctxKey string

const ctxAdminEmail ctxKey = "admin_email"

// RequireAdmin gates mutating routes. A missing, malformed, tampered or
// expired credential gets 401; a verified token carrying any identity other
// than the configured administrator gets 403. The verified email is stored
// in the request context for audit logging.
func RequireAdmin(secret, adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				response.Unauthorized(w, "Authorization required", response.CodeUnauthorized)
				return
			}

			claims, err := auth.Parse(strings.TrimPrefix(authz, "Bearer "), secret)
			if err != nil {
				response.FromError(w, err)
				return
			}

			if claims.Email != adminEmail {
				response.Forbidden(w, "Not authorized")
				return
			}

			ctx := context.WithValue(r.Context(), ctxAdminEmail, claims.Email)
			ctx = context.WithValue(ctx, logger.AdminKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminEmail returns the verified administrator email set by RequireAdmin,
// or "" when the request did not pass the gate.
func AdminEmail(r *http.Request) string {
	v := r.Context().Value(ctxAdminEmail)
	if v == nil {
		return ""
	}
	return v.(string)
}
