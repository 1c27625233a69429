package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/postpilot/postpilot-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ServiceToken guards service-to-service endpoints (the external cron
// hitting /api/scheduler/process, the n8n workflow webhook). The bearer
// secret is compared in constant time.
func ServiceToken(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" {
				logrus.Error("service token not configured, rejecting request")
				apiErrors.WriteError(w, apiErrors.ErrInvalidServiceToken, "Service token not configured", nil)
				return
			}

			authHeader := r.Header.Get("Authorization")
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidServiceToken, "Bearer token is required", nil)
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
				logrus.WithField("path", r.URL.Path).Warn("invalid service token")
				apiErrors.WriteError(w, apiErrors.ErrInvalidServiceToken, "Invalid service token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
