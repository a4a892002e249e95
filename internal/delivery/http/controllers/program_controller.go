package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"techtalks/internal/delivery/http/helpers"
	"techtalks/internal/domain"
)

// ProgramEntryRequest is the request body for creating or updating a program entry.
// CompanyID is optional; an empty value means the entry has no host company.
type ProgramEntryRequest struct {
	CompanyID       *string   `json:"company_id"`
	RoomID          string    `json:"room_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Validate implements Validator.
func (p ProgramEntryRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(p.RoomID) == "" {
		errs = append(errs, "room_id is required")
	}
	if p.StartsAt.IsZero() {
		errs = append(errs, "starts_at is required")
	}
	if p.DurationMinutes <= 0 {
		errs = append(errs, "duration_minutes must be positive")
	}
	return errs
}

func (p ProgramEntryRequest) toEntry() *domain.ProgramEntry {
	return &domain.ProgramEntry{
		CompanyID:       p.CompanyID,
		RoomID:          strings.TrimSpace(p.RoomID),
		Name:            strings.TrimSpace(p.Name),
		Description:     p.Description,
		StartsAt:        p.StartsAt,
		DurationMinutes: p.DurationMinutes,
	}
}

// ProgramEntryUpdateRequest adds the owning event to ProgramEntryRequest for PUT /admin/program/{entryID}.
type ProgramEntryUpdateRequest struct {
	ProgramEntryRequest
	EventID string `json:"event_id"`
}

// Validate implements Validator.
func (p ProgramEntryUpdateRequest) Validate() []string {
	errs := p.ProgramEntryRequest.Validate()
	if strings.TrimSpace(p.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	return errs
}

// ProgramEntrySuccessResponse is the success response envelope for POST /admin/events/{eventID}/program (201).
type ProgramEntrySuccessResponse struct {
	Data  *domain.ProgramEntry `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ProgramListSuccessResponse is the success response envelope for GET /admin/events/{eventID}/program (200).
type ProgramListSuccessResponse struct {
	Data  []*domain.ProgramEntryView `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// ProgramOptionsSuccessResponse is the success response envelope for GET /admin/events/{eventID}/program/options (200).
type ProgramOptionsSuccessResponse struct {
	Data  *domain.ProgramOptions `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type ProgramController struct {
	Logger  *slog.Logger
	Service domain.ProgramService
}

func NewProgramController(logger *slog.Logger, svc domain.ProgramService) *ProgramController {
	return &ProgramController{Logger: logger, Service: svc}
}

// ListProgram godoc
// @Summary List the program of an event
// @Tags admin-program
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ProgramListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/program [get]
func (c *ProgramController) ListProgram(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	entries, err := c.Service.ListProgram(r.Context(), eventID)
	if err != nil {
		writeError(c.Logger, w, r, err, "event not found")
		return
	}
	if entries == nil {
		entries = []*domain.ProgramEntryView{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// GetProgramOptions godoc
// @Summary Program entry options
// @Description Lists the sponsors of the event and all rooms, the choices for a new program entry.
// @Tags admin-program
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ProgramOptionsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/program/options [get]
func (c *ProgramController) GetProgramOptions(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	opts, err := c.Service.GetProgramOptions(r.Context(), eventID)
	if err != nil {
		writeError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, opts)
}

// CreateEntry godoc
// @Summary Create a program entry
// @Tags admin-program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param entry body ProgramEntryRequest true "Program entry"
// @Success 201 {object} controllers.ProgramEntrySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/program [post]
func (c *ProgramController) CreateEntry(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req ProgramEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry := req.toEntry()
	entry.EventID = eventID
	if err := c.Service.CreateEntry(r.Context(), entry); err != nil {
		writeError(c.Logger, w, r, err, "event, room or company not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, entry)
}

// UpdateEntry godoc
// @Summary Update a program entry
// @Tags admin-program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entryID path string true "Program entry ID (UUID)"
// @Param entry body ProgramEntryUpdateRequest true "Program entry"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded or unchanged"
// @Failure 400 {object} helpers.StatusEnvelope "status: failed"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/program/{entryID} [put]
func (c *ProgramController) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r, "entryID")
	if !ok {
		return
	}
	var req ProgramEntryUpdateRequest
	if !helpers.DecodeAndValidateStatus(w, r, &req) {
		return
	}
	entry := req.toEntry()
	entry.ID = entryID
	entry.EventID = strings.TrimSpace(req.EventID)
	status, err := c.Service.UpdateEntry(r.Context(), entry)
	if err != nil {
		writeStatusError(c.Logger, w, r, err, "program entry not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, status, nil)
}

// DeleteEntry godoc
// @Summary Delete a program entry
// @Tags admin-program
// @Produce json
// @Security BearerAuth
// @Param entryID path string true "Program entry ID (UUID)"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/program/{entryID} [delete]
func (c *ProgramController) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r, "entryID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEntry(r.Context(), entryID); err != nil {
		writeStatusError(c.Logger, w, r, err, "program entry not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, domain.StatusSucceeded, nil)
}
