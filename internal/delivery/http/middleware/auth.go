package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "techtalks/internal/delivery/http/helpers"
	"techtalks/internal/domain"
)

type contextKey string

const adminKey contextKey = "admin"

// SetAdmin returns a context carrying the authorized admin subject.
func SetAdmin(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminKey, subject)
}

// AdminFromContext returns the admin subject set by RequireAdmin, if present.
func AdminFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminKey).(string)
	return subject, ok
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(auth[len(prefix):])
	return token, token != ""
}

func deny(w http.ResponseWriter, message string) {
	h.WriteJSONStatus(w, http.StatusUnauthorized, domain.StatusDenied, &h.APIError{Code: h.ErrCodeUnauthorized, Message: message})
}

// RequireAdmin returns middleware that authorizes the Bearer credential with guard and stores the
// admin subject in the request context. Missing or rejected credentials get 401 with status "denied".
func RequireAdmin(guard domain.Guard, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				deny(w, "missing or malformed authorization header")
				return
			}
			subject, err := guard.Authorize(token)
			if err != nil {
				logger.InfoContext(r.Context(), "admin credential rejected", "path", r.URL.Path, "err", err)
				deny(w, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(SetAdmin(r.Context(), subject)))
		})
	}
}
