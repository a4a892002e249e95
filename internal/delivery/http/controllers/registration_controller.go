package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"techtalks/internal/delivery/http/helpers"
	"techtalks/internal/domain"
)

// RegistrationRequest is the request body for POST /registration.
type RegistrationRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Affiliation string `json:"affiliation"`
	Age         int    `json:"age"`
	StudyYear   int    `json:"studyYear"`
	Allergies   string `json:"allergies"`
}

// VerifyRequest is the request body for POST /verify.
type VerifyRequest struct {
	Token string `json:"token"`
}

// Validate implements Validator.
func (v VerifyRequest) Validate() []string {
	if strings.TrimSpace(v.Token) == "" {
		return []string{"token is required"}
	}
	return nil
}

type RegistrationController struct {
	Logger        *slog.Logger
	Events        domain.EventService
	Registrations domain.RegistrationService
	Verification  domain.VerificationService
}

func NewRegistrationController(logger *slog.Logger, events domain.EventService, registrations domain.RegistrationService, verification domain.VerificationService) *RegistrationController {
	return &RegistrationController{
		Logger:        logger,
		Events:        events,
		Registrations: registrations,
		Verification:  verification,
	}
}

// registrationFailure maps a Submit error to an HTTP status and error code.
func registrationFailure(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest, helpers.ErrCodeInvalidEmail
	case errors.Is(err, domain.ErrInvalidAge):
		return http.StatusBadRequest, helpers.ErrCodeInvalidAge
	case errors.Is(err, domain.ErrInvalidStudyYear):
		return http.StatusBadRequest, helpers.ErrCodeInvalidStudyYear
	case errors.Is(err, domain.ErrInvalidName):
		return http.StatusBadRequest, helpers.ErrCodeInvalidName
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, helpers.ErrCodeBadRequest
	case errors.Is(err, domain.ErrRegistrationNotOpen):
		return http.StatusConflict, helpers.ErrCodeRegistrationNotOpen
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, helpers.ErrCodeNotFound
	default:
		return http.StatusInternalServerError, helpers.ErrCodeInternalError
	}
}

// Submit godoc
// @Summary Register for the current event
// @Description Validates the signup and stores an unconfirmed registration for the current event. A confirmation link is e-mailed; the seat is only held once the link is verified.
// @Tags registration
// @Accept json
// @Produce json
// @Param registration body RegistrationRequest true "Registrant details"
// @Success 201 {object} helpers.StatusEnvelope "status: succeeded"
// @Failure 400 {object} helpers.StatusEnvelope "status: failed; error.code: invalid_email, invalid_age, invalid_study_year, invalid_name or bad_request"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed; error.code: not_found (no current event)"
// @Failure 409 {object} helpers.StatusEnvelope "status: failed; error.code: registration_not_open"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed; error.code: internal_error"
// @Router /registration [post]
func (c *RegistrationController) Submit(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if !helpers.DecodeAndValidateStatus(w, r, &req) {
		return
	}
	event, err := c.Events.GetCurrentEvent(r.Context())
	if err != nil {
		c.fail(w, r, err, "no event is open for registration")
		return
	}
	status, err := c.Registrations.Submit(r.Context(), event, domain.RegistrationInput{
		Name:        req.Name,
		Email:       req.Email,
		Affiliation: req.Affiliation,
		Age:         req.Age,
		StudyYear:   req.StudyYear,
		Allergies:   req.Allergies,
	})
	if err != nil {
		c.fail(w, r, err, err.Error())
		return
	}
	helpers.WriteJSONStatus(w, http.StatusCreated, status, nil)
}

func (c *RegistrationController) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	code, errCode := registrationFailure(err)
	if code == http.StatusInternalServerError {
		logFailure(c.Logger, r, err)
		message = internalErrorMessage
	}
	helpers.WriteJSONStatus(w, code, domain.StatusFailed, &helpers.APIError{Code: errCode, Message: message})
}

// Verify godoc
// @Summary Confirm a registration
// @Description Confirms the registration behind an e-mailed token if the event still has capacity. Confirming twice reports repeat.
// @Tags registration
// @Accept json
// @Produce json
// @Param body body VerifyRequest true "Verification token"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded or repeat"
// @Failure 400 {object} helpers.StatusEnvelope "status: failed; error.code: bad_request"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed; error.code: not_found"
// @Failure 409 {object} helpers.StatusEnvelope "status: full; error.code: event_full"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed; error.code: internal_error"
// @Router /verify [post]
func (c *RegistrationController) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if !helpers.DecodeAndValidateStatus(w, r, &req) {
		return
	}
	status, err := c.Verification.Verify(r.Context(), strings.TrimSpace(req.Token))
	switch {
	case err == nil:
		helpers.WriteJSONStatus(w, http.StatusOK, status, nil)
	case errors.Is(err, domain.ErrCapacityExceeded):
		helpers.WriteJSONStatus(w, http.StatusConflict, domain.StatusFull, &helpers.APIError{Code: helpers.ErrCodeEventFull, Message: "the event is full"})
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONStatus(w, http.StatusNotFound, domain.StatusFailed, &helpers.APIError{Code: helpers.ErrCodeNotFound, Message: "unknown token"})
	default:
		logFailure(c.Logger, r, err)
		helpers.WriteJSONStatus(w, http.StatusInternalServerError, domain.StatusFailed, &helpers.APIError{Code: helpers.ErrCodeInternalError, Message: internalErrorMessage})
	}
}
