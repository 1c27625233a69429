package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceToken(t *testing.T) {
	tests := []struct {
		name           string
		configured     string
		authHeader     string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "valid token reaches the handler",
			configured:     "cron-secret",
			authHeader:     "Bearer cron-secret",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "wrong token is rejected",
			configured:     "cron-secret",
			authHeader:     "Bearer wrong-secret",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing header is rejected",
			configured:     "cron-secret",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-bearer header is rejected",
			configured:     "cron-secret",
			authHeader:     "Basic cron-secret",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unconfigured token rejects everything",
			configured:     "",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/n8n", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			ServiceToken(tt.configured)(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
