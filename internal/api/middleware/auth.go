package middleware

import (
	"context"
	"net/http"

	"github.com/commonsapp/commons/internal/api/apierr"
	"github.com/commonsapp/commons/internal/model"
	"github.com/commonsapp/commons/internal/services/session"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth creates authentication middleware. The app has at most one active
// identity (the process-level session), so authenticating a request means
// checking that a session is active and attaching its identity.
func Auth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := sessions.Current()
			if !ok {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the acting identity attached by Auth
func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userContextKey).(model.User)
	return user, ok
}
