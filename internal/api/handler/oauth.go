package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/connecting"
	"github.com/postpilot/postpilot-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type StartConnectRequest struct {
	BrandID string `json:"brand_id"`
}

// StartOAuthConnect returns the platform authorize URL the frontend
// redirects the user to.
func StartOAuthConnect(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - StartOAuthConnect")

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		platform := domain.Platform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))

		var req StartConnectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.BrandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "brand_id is required", nil)
			return
		}

		authorizeURL, err := service.StartConnect(userClaims.UserID, req.BrandID, platform)
		if err != nil {
			logrus.Error(err)
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"authorize_url": authorizeURL})
	}
}

// OAuthCallback finishes the connect flow. The route is public: the
// platform redirects the browser here, and the signed state parameter
// carries the brand that started the flow.
func OAuthCallback(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - OAuthCallback")

		platform := domain.Platform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))

		query := r.URL.Query()
		state := query.Get("state")
		code := query.Get("code")

		if errMsg := query.Get("error"); errMsg != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "authorization denied by user", map[string]string{"error": errMsg})
			return
		}

		account, err := service.CompleteConnect(r.Context(), platform, state, code)
		if err != nil {
			logrus.Error(err)
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(account)
	}
}

// ListSocialAccounts lists the accounts connected to a brand.
func ListSocialAccounts(service connecting.Connector) http.HandlerFunc {
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

		accounts, err := service.ListAccounts(userClaims.UserID, brandID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accounts)
	}
}

func DisconnectSocialAccount(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DisconnectSocialAccount")

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DisconnectAccount(userClaims.UserID, accountID); err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
