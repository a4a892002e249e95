package helpers

import (
	"encoding/json"
	"net/http"
	"strings"

	"techtalks/internal/domain"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// Decode decodes the request body into dest (with DisallowUnknownFields) and, if dest
// implements Validator, runs Validate(). The returned message is empty on success.
func Decode(r *http.Request, dest any) string {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return err.Error()
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			return strings.Join(errs, "; ")
		}
	}
	return ""
}

// DecodeAndValidate decodes and validates like Decode. On failure it writes a 400 JSON error
// and returns false. Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if msg := Decode(r, dest); msg != "" {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, msg)
		return false
	}
	return true
}

// DecodeAndValidateStatus is DecodeAndValidate for status-bearing endpoints: failures are
// written as a 400 with status "failed".
func DecodeAndValidateStatus(w http.ResponseWriter, r *http.Request, dest any) bool {
	if msg := Decode(r, dest); msg != "" {
		WriteJSONStatus(w, http.StatusBadRequest, domain.StatusFailed, &APIError{Code: ErrCodeBadRequest, Message: msg})
		return false
	}
	return true
}
