package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"techtalks/internal/delivery/http/helpers"
	"techtalks/internal/domain"
)

const internalErrorMessage = "internal error"

func logFailure(logger *slog.Logger, r *http.Request, err error) {
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
}

// pathID reads a UUID path parameter. On a missing or malformed value it writes 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return "", false
	}
	return id.String(), true
}

// writeError maps a service error onto the envelope for endpoints that return data.
func writeError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFound)
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		logFailure(logger, r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, internalErrorMessage)
	}
}

// writeStatusError is writeError for status-bearing endpoints; the status is always "failed".
func writeStatusError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONStatus(w, http.StatusNotFound, domain.StatusFailed, &helpers.APIError{Code: helpers.ErrCodeNotFound, Message: notFound})
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONStatus(w, http.StatusBadRequest, domain.StatusFailed, &helpers.APIError{Code: helpers.ErrCodeBadRequest, Message: err.Error()})
	default:
		logFailure(logger, r, err)
		helpers.WriteJSONStatus(w, http.StatusInternalServerError, domain.StatusFailed, &helpers.APIError{Code: helpers.ErrCodeInternalError, Message: internalErrorMessage})
	}
}
