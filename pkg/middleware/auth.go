package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/postpilot/postpilot-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	// SessionCookieName is the cookie set by the web frontend after
	// login. The same JWT is accepted via Authorization header.
	SessionCookieName = "pp_session"
)

// publicPaths are reachable without a user session. Webhooks and the
// queue-processing endpoint authenticate on their own (signature or
// service token).
var publicPaths = []string{
	"/healthcheck",
	"/api/auth/login",
	"/api/auth/register",
	"/api/webhooks/",
	"/api/scheduler/process",
}

func isPublicPath(path string) bool {
	// Platform redirects land here without a session; the signed state
	// parameter authenticates the flow.
	if strings.HasPrefix(path, "/api/oauth/") && strings.HasSuffix(path, "/callback") {
		return true
	}

	for _, public := range publicPaths {
		if strings.HasSuffix(public, "/") {
			if strings.HasPrefix(path, public) {
				return true
			}
		} else if path == public {
			return true
		}
	}
	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := tokenFromRequest(r)
			if tokenString == "" {
				http.Error(w, "Authentication is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest pulls the JWT from the Authorization header, falling
// back to the session cookie set by the web app.
func tokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
		return ""
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
