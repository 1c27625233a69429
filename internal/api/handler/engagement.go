package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/engaging"
	"github.com/postpilot/postpilot-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type GenerateResponseRequest struct {
	EngagementItemID string `json:"engagement_item_id"`
}

// ListEngagements returns the triage inbox of a brand, highest priority
// first.
func ListEngagements(service engaging.Engager) http.HandlerFunc {
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

		var statuses []domain.EngagementStatus
		for _, status := range r.URL.Query()["status"] {
			statuses = append(statuses, domain.EngagementStatus(status))
		}

		items, err := service.ListItems(userClaims.UserID, brandID, statuses)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

// GenerateEngagementResponse drafts an AI reply for one engagement item.
func GenerateEngagementResponse(service engaging.Engager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateEngagementResponse")

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		var req GenerateResponseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.EngagementItemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "engagement_item_id is required", nil)
			return
		}

		response, err := service.GenerateResponse(r.Context(), userClaims.UserID, req.EngagementItemID)
		if err != nil {
			logrus.Error(err)
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(response)
	}
}

// ApproveEngagementResponse approves or rejects a pending draft;
// approval sends the reply on the platform.
func ApproveEngagementResponse(service engaging.Engager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ApproveEngagementResponse")

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		var req engaging.ApproveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.ResponseID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "response_id is required", nil)
			return
		}

		response, err := service.ApproveResponse(r.Context(), userClaims.UserID, &req)
		if err != nil {
			logrus.Error(err)
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

func IgnoreEngagement(service engaging.Engager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - IgnoreEngagement")

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		itemID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.IgnoreItem(userClaims.UserID, itemID); err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
