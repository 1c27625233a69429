package handler

import (
	"encoding/json"
	"net/http"

	"github.com/postpilot/postpilot-api/internal/usecases/analytics"
	"github.com/postpilot/postpilot-api/pkg/apiErrors"
	"github.com/postpilot/postpilot-api/pkg/utils"
)

// AnalyticsOverview serves the dashboard summary for the current month.
func AnalyticsOverview(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		brandID := r.URL.Query().Get("brand_id")
		if brandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "brand_id query parameter is required", nil)
			return
		}

		overview, err := service.Overview(userClaims.UserID, brandID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overview)
	}
}

func PublishHistory(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		brandID := r.URL.Query().Get("brand_id")
		if brandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "brand_id query parameter is required", nil)
			return
		}

		since, err := utils.ParseDate(r.URL.Query().Get("since"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "since must be a YYYY-MM-DD date", nil)
			return
		}

		history, err := service.PublishHistory(userClaims.UserID, brandID, since)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}
