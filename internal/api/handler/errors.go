package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/internal/usecases/branding"
	"github.com/postpilot/postpilot-api/internal/usecases/connecting"
	"github.com/postpilot/postpilot-api/internal/usecases/contenting"
	"github.com/postpilot/postpilot-api/internal/usecases/engaging"
	"github.com/postpilot/postpilot-api/internal/usecases/scheduling"
	"github.com/postpilot/postpilot-api/pkg/apiErrors"
	"github.com/postpilot/postpilot-api/pkg/middleware"
)

// userFromContext pulls the authenticated claims placed by the auth
// middleware.
func userFromContext(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// writeUsecaseError maps service-layer sentinel errors to API error
// codes. Unknown errors become 500s without leaking internals.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, branding.ErrBrandNotFound),
		errors.Is(err, branding.ErrNotOwner),
		errors.Is(err, contenting.ErrPostNotFound),
		errors.Is(err, scheduling.ErrScheduleNotFound),
		errors.Is(err, engaging.ErrItemNotFound),
		errors.Is(err, engaging.ErrResponseNotFound),
		errors.Is(err, connecting.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)

	case errors.Is(err, branding.ErrMissingName),
		errors.Is(err, contenting.ErrMissingTopic),
		errors.Is(err, contenting.ErrMissingContent),
		errors.Is(err, scheduling.ErrMissingScheduleFor),
		errors.Is(err, connecting.ErrMissingOAuthCode):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, contenting.ErrInvalidPlatform),
		errors.Is(err, connecting.ErrInvalidPlatform),
		errors.Is(err, scheduling.ErrPlatformMismatch):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, scheduling.ErrScheduleInPast):
		apiErrors.WriteError(w, apiErrors.ErrScheduleInPast, err.Error(), nil)

	case errors.Is(err, scheduling.ErrScheduleImmutable):
		apiErrors.WriteError(w, apiErrors.ErrScheduleImmutable, err.Error(), nil)

	case errors.Is(err, contenting.ErrPostNotEditable),
		errors.Is(err, engaging.ErrAlreadyResolved),
		errors.Is(err, engaging.ErrItemIsSpam),
		errors.Is(err, scheduling.ErrAccountNotUsable):
		apiErrors.WriteError(w, apiErrors.ErrConflict, err.Error(), nil)

	case errors.Is(err, billing.ErrPlanLimitReached),
		errors.Is(err, connecting.ErrAccountLimit):
		apiErrors.WriteError(w, apiErrors.ErrPlanLimitReached, err.Error(), nil)

	case errors.Is(err, connecting.ErrInvalidState):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal error", nil)
	}
}
