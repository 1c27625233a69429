package handler

import (
	"encoding/json"
	"net/http"

	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/pkg/apiErrors"
)

// GetSubscription returns the caller's current plan, status and limits.
func GetSubscription(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		view, err := service.GetSubscriptionView(userClaims.UserID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(view)
	}
}
