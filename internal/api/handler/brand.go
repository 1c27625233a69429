package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/branding"
	"github.com/postpilot/postpilot-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func CreateBrand(service branding.Brander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBrand")

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		var brand domain.Brand
		if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		created, err := service.CreateBrand(userClaims.UserID, &brand)
		if err != nil {
			logrus.Error(err)
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetBrand(service branding.Brander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if brandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "brand id is required", nil)
			return
		}

		brand, err := service.GetBrand(userClaims.UserID, brandID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(brand)
	}
}

func ListBrands(service branding.Brander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		brands, err := service.ListBrands(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error listing brands", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(brands)
	}
}

func UpdateBrand(service branding.Brander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBrand")

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if brandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "brand id is required", nil)
			return
		}

		var req domain.UpdateBrandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}
		req.ID = brandID

		brand, err := service.UpdateBrand(userClaims.UserID, &req)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(brand)
	}
}

func DeleteBrand(service branding.Brander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBrand")

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if brandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "brand id is required", nil)
			return
		}

		if err := service.DeleteBrand(userClaims.UserID, brandID); err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
