package middleware

import (
	"context"
	"net/http"
	"strings"

	"meowscope/internal/util"

	"github.com/rs/zerolog"
)

// Injected key type to avoid context collisions
type contextKey string

const UserContextKey = contextKey("user")

// SessionCookieName is the cookie the Supabase web client stores its access token in.
const SessionCookieName = "sb-access-token"

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserContextKey).(string)
	return userID, ok && userID != ""
}

// WithUserID stores an authenticated user id on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserContextKey, userID)
}

// tokenFromRequest reads a bearer token from the Authorization header, falling
// back to the Supabase session cookie. ok is false when neither is present.
func tokenFromRequest(r *http.Request) (token string, ok bool, malformed bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", true, true
		}
		return parts[1], true, false
	}
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value, true, false
	}
	return "", false, false
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
}

// AuthMiddleware rejects requests without a valid Supabase access token.
func AuthMiddleware(jwtSecret string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, present, malformed := tokenFromRequest(r)
			if !present {
				logger.Debug().Str("path", r.URL.Path).Msg("Missing access token")
				writeUnauthorized(w)
				return
			}
			if malformed {
				logger.Warn().Str("path", r.URL.Path).Msg("Invalid authorization header")
				writeUnauthorized(w)
				return
			}
			claims, err := util.ValidateJWT(token, jwtSecret)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Invalid token")
				writeUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}

// OptionalAuthMiddleware lets anonymous requests through but still rejects a
// token that is present and invalid.
func OptionalAuthMiddleware(jwtSecret string, logger zerolog.Logger) func(http.Handler) http.Handler {
	required := AuthMiddleware(jwtSecret, logger)
	return func(next http.Handler) http.Handler {
		withAuth := required(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, present, _ := tokenFromRequest(r); !present {
				next.ServeHTTP(w, r)
				return
			}
			withAuth.ServeHTTP(w, r)
		})
	}
}
