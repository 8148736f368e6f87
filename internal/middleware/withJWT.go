package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/app/service"
)

type ContextKey string

// UserIDKey holds the authenticated user id in request contexts. The gRPC
// interceptors use the same key.
const UserIDKey ContextKey = "userID"

const tokenCookie = "token"

// InjectUserID returns req with userID stored under UserIDKey.
func InjectUserID(req *http.Request, userID string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), UserIDKey, userID))
}

// UserID returns the user id stored in ctx, if any.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

// WithJWT resolves the user from the token cookie. Requests without a valid
// token get a freshly issued one, so every downstream handler sees a user id.
func WithJWT(auth service.AuthIface, log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(tokenCookie); err == nil {
				claims, err := auth.ParseClaims(cookie)
				if err == nil {
					next.ServeHTTP(w, InjectUserID(r, claims.UserID))
					return
				}
				log.Info("rejecting token cookie", zap.Error(err))
			}

			tokenString, userID, err := auth.BuildJWTString()
			if err != nil {
				log.Error("cannot issue token", zap.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     tokenCookie,
				Value:    tokenString,
				Expires:  time.Now().Add(service.TokenExp),
				HttpOnly: true,
				Path:     "/",
			})

			next.ServeHTTP(w, InjectUserID(r, userID))
		})
	}
}
