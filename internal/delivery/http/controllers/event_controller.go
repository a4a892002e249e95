package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"techtalks/internal/delivery/http/helpers"
	"techtalks/internal/domain"
)

// EventRequest is the request body for POST /admin/events and PUT /admin/events/{eventID}.
type EventRequest struct {
	Description         string     `json:"description"`
	Capacity            int        `json:"capacity"`
	Date                time.Time  `json:"date"`
	RegistrationOpensAt *time.Time `json:"registration_opens_at"`
	Link                *string    `json:"link"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Description) == "" {
		errs = append(errs, "description is required")
	}
	if e.Capacity < 0 {
		errs = append(errs, "capacity must not be negative")
	}
	if e.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if e.RegistrationOpensAt != nil && !e.Date.IsZero() && e.RegistrationOpensAt.After(e.Date) {
		errs = append(errs, "registration_opens_at must not be after date")
	}
	return errs
}

func (e EventRequest) toEvent() *domain.Event {
	link := e.Link
	if link != nil && strings.TrimSpace(*link) == "" {
		link = nil
	}
	return domain.NewEvent(e.Description, e.Capacity, e.Date, e.RegistrationOpensAt, link, time.Time{})
}

// EventSuccessResponse is the success response envelope for POST /admin/events (201).
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for GET /admin/events (200).
type EventListSuccessResponse struct {
	Data  []*domain.EventSummary `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// EventSummarySuccessResponse is the success response envelope for GET /admin/events/latest (200).
type EventSummarySuccessResponse struct {
	Data  *domain.EventSummary `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// EventDetailResponse is the data of GET /admin/events/{eventID}.
type EventDetailResponse struct {
	*domain.EventDetail
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// EventDetailSuccessResponse is the success response envelope for GET /admin/events/{eventID} (200).
type EventDetailSuccessResponse struct {
	Data  EventDetailResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// RegistrationListResponse is the data of GET /admin/events/{eventID}/registrations.
type RegistrationListResponse struct {
	Registrations []*domain.Registration `json:"registrations"`
	Pagination    helpers.PaginationMeta `json:"pagination"`
}

// RegistrationListSuccessResponse is the success response envelope for the participant list (200).
type RegistrationListSuccessResponse struct {
	Data  RegistrationListResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type EventController struct {
	Logger        *slog.Logger
	Service       domain.EventService
	Registrations domain.RegistrationService
}

func NewEventController(logger *slog.Logger, svc domain.EventService, registrations domain.RegistrationService) *EventController {
	return &EventController{
		Logger:        logger,
		Service:       svc,
		Registrations: registrations,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Lists all events, newest first, with confirmed and total registration counts.
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeError(c.Logger, w, r, err, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetLatestEvent godoc
// @Summary Latest event
// @Description Returns the event with the latest date and its registration counts.
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventSummarySuccessResponse
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/latest [get]
func (c *EventController) GetLatestEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetLatestEvent(r.Context())
	if err != nil {
		writeError(c.Logger, w, r, err, "no events")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetEvent godoc
// @Summary Event detail
// @Description Returns the event with its confirmed count, sponsors, program and a page of participants.
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Participant page (default 1)"
// @Param page_size query string false "Participants per page (default 50, max 500, or all)"
// @Success 200 {object} controllers.EventDetailSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	detail, err := c.Service.GetEventDetail(r.Context(), eventID, params)
	if err != nil {
		writeError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventDetailResponse{
		EventDetail: detail,
		Pagination:  helpers.NewPaginationMeta(params, detail.Total),
	})
}

// CreateEvent godoc
// @Summary Create an event
// @Tags admin-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toEvent()
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		writeError(c.Logger, w, r, err, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the editable fields. Reports unchanged when nothing differs.
// @Tags admin-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded or unchanged"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidateStatus(w, r, &req) {
		return
	}
	event := req.toEvent()
	event.ID = eventID
	status, err := c.Service.UpdateEvent(r.Context(), event)
	if err != nil {
		writeStatusError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, status, nil)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event with its registrations, sponsors and program.
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		writeStatusError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, domain.StatusSucceeded, nil)
}

// ListRegistrations godoc
// @Summary List participants of an event
// @Tags admin-registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Page (default 1)"
// @Param page_size query string false "Page size (default 50, max 500, or all)"
// @Success 200 {object} controllers.RegistrationListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/registrations [get]
func (c *EventController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	regs, total, err := c.Registrations.ListParticipants(r.Context(), eventID, params)
	if err != nil {
		writeError(c.Logger, w, r, err, "event not found")
		return
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationListResponse{
		Registrations: regs,
		Pagination:    helpers.NewPaginationMeta(params, total),
	})
}

// DeleteRegistration godoc
// @Summary Delete a participant
// @Tags admin-registrations
// @Produce json
// @Security BearerAuth
// @Param token path string true "Registration token (UUID)"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/registrations/{token} [delete]
func (c *EventController) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	token, ok := pathID(w, r, "token")
	if !ok {
		return
	}
	if err := c.Registrations.DeleteParticipant(r.Context(), token); err != nil {
		writeStatusError(c.Logger, w, r, err, "registration not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, domain.StatusSucceeded, nil)
}
