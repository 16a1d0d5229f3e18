package auth

import (
	"context"
	"net/http"
)

// SessionCookie is the cookie carrying the opaque session id.
const SessionCookie = "session_id"

type ctxKey string

const userKey ctxKey = "user"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(userKey).(*User)
	return u, ok
}

// RequireSession resolves the session cookie through the service and stores
// the user on the request context. Requests without a live session get 403.
func RequireSession(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if c, err := r.Cookie(SessionCookie); err == nil {
				sessionID = c.Value
			}

			u, err := svc.UserBySession(r.Context(), sessionID)
			if err != nil {
				http.Error(w, "server error", http.StatusInternalServerError)
				return
			}
			if u == nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
