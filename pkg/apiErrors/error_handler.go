package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to clients. The prefix groups the concern, the
// number is stable once published.
const (
	// Authentication errors (AUTH_xxx)
	ErrInvalidCredentials    = "AUTH_001" // invalid credentials
	ErrUserDisabled          = "AUTH_002" // user disabled
	ErrUserNotFound          = "AUTH_003" // user not found
	ErrInvalidToken          = "AUTH_004" // invalid token
	ErrExpiredToken          = "AUTH_005" // expired token
	ErrInsufficientPrivilege = "AUTH_006" // insufficient privileges
	ErrUserAlreadyExists     = "AUTH_007" // user already exists
	ErrInvalidServiceToken   = "AUTH_008" // invalid service-to-service token
	ErrInvalidSignature      = "AUTH_009" // invalid webhook signature

	// Validation errors (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required data missing
	ErrInvalidFormat       = "VAL_003" // invalid data format

	// Resource errors (RES_xxx)
	ErrNotFound      = "RES_001" // resource not found or not owned by caller
	ErrAlreadyExists = "RES_002" // resource already exists
	ErrConflict      = "RES_003" // state conflict (e.g. already processed)

	// Scheduling errors (SCH_xxx)
	ErrScheduleInPast    = "SCH_001" // scheduled_for must be in the future
	ErrScheduleImmutable = "SCH_002" // scheduled post can no longer be changed

	// Billing errors (BIL_xxx)
	ErrPlanLimitReached = "BIL_001" // plan usage limit reached
	ErrNoSubscription   = "BIL_002" // no subscription on file

	// Server errors (SRV_xxx)
	ErrInternalServer    = "SRV_001" // internal server error
	ErrDatabaseOperation = "SRV_002" // database operation failed
	ErrExternalService   = "SRV_003" // external service failed
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidServiceToken:   http.StatusUnauthorized,
	ErrInvalidSignature:      http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrAlreadyExists:         http.StatusConflict,
	ErrConflict:              http.StatusConflict,
	ErrScheduleInPast:        http.StatusBadRequest,
	ErrScheduleImmutable:     http.StatusConflict,
	ErrPlanLimitReached:      http.StatusConflict,
	ErrNoSubscription:        http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError is the standard error body returned by every handler.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an APIError with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
