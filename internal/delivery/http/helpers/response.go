package helpers

import (
	"encoding/json"
	"net/http"

	"techtalks/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest          = "bad_request"
	ErrCodeUnauthorized        = "unauthorized"
	ErrCodeForbidden           = "forbidden"
	ErrCodeNotFound            = "not_found"
	ErrCodeConflict            = "conflict"
	ErrCodeInternalError       = "internal_error"
	ErrCodeInvalidEmail        = "invalid_email"
	ErrCodeInvalidAge          = "invalid_age"
	ErrCodeInvalidStudyYear    = "invalid_study_year"
	ErrCodeInvalidName         = "invalid_name"
	ErrCodeRegistrationNotOpen = "registration_not_open"
	ErrCodeEventFull           = "event_full"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// StatusResponse is the data of endpoints that report an outcome status.
// swagger:model StatusResponse
type StatusResponse struct {
	Status domain.Status `json:"status"`
}

// StatusEnvelope carries the outcome status at the top level and, for clients using the
// standard envelope, again under data. Error is set on failures.
// swagger:model StatusEnvelope
type StatusEnvelope struct {
	Status domain.Status  `json:"status"`
	Data   StatusResponse `json:"data"`
	Error  *APIError      `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

// WriteJSONStatus writes {"status": status, "data": {"status": status}, "error": ...}.
// The status is always present so clients can switch on it; err is nil for successful outcomes.
func WriteJSONStatus(w http.ResponseWriter, statusCode int, status domain.Status, err *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(StatusEnvelope{
		Status: status,
		Data:   StatusResponse{Status: status},
		Error:  err,
	})
}
