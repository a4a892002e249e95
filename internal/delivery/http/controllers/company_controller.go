package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"techtalks/internal/delivery/http/helpers"
	"techtalks/internal/domain"
)

// CompanyRequest is the request body for POST /admin/companies and PUT /admin/companies/{companyID}.
// SponsorTier applies to the current event; 0 means not sponsoring.
type CompanyRequest struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	SponsorTier int    `json:"sponsor_tier"`
}

// Validate implements Validator.
func (c CompanyRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.SponsorTier < 0 {
		errs = append(errs, "sponsor_tier must not be negative")
	}
	return errs
}

// SponsorRequest is the request body for POST /admin/events/{eventID}/sponsors.
type SponsorRequest struct {
	CompanyID string `json:"company_id"`
	Tier      int    `json:"tier"`
}

// Validate implements Validator.
func (s SponsorRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.CompanyID) == "" {
		errs = append(errs, "company_id is required")
	}
	if s.Tier < 1 {
		errs = append(errs, "tier must be at least 1")
	}
	return errs
}

// CompanyListSuccessResponse is the success response envelope for GET /admin/companies (200).
type CompanyListSuccessResponse struct {
	Data  []*domain.CompanyWithTier `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// CompanySuccessResponse is the success response envelope for POST /admin/companies (201).
type CompanySuccessResponse struct {
	Data  *domain.CompanyWithTier `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// DirectorySuccessResponse is the success response envelope for GET /admin/companies/directory (200).
type DirectorySuccessResponse struct {
	Data  []*domain.DirectoryCompany `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// SponsorListSuccessResponse is the success response envelope for GET /admin/events/{eventID}/sponsors (200).
type SponsorListSuccessResponse struct {
	Data  []*domain.SponsorView `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type CompanyController struct {
	Logger  *slog.Logger
	Service domain.CompanyService
}

func NewCompanyController(logger *slog.Logger, svc domain.CompanyService) *CompanyController {
	return &CompanyController{
		Logger:  logger,
		Service: svc,
	}
}

// ListCompanies godoc
// @Summary List companies
// @Description Lists all companies with their sponsor tier for the current event.
// @Tags admin-companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.CompanyListSuccessResponse
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/companies [get]
func (c *CompanyController) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := c.Service.ListCompanies(r.Context())
	if err != nil {
		writeError(c.Logger, w, r, err, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, companies)
}

// CreateCompany godoc
// @Summary Create a company
// @Description Creates a company. A positive sponsor_tier also makes it a sponsor of the current event.
// @Tags admin-companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param company body CompanyRequest true "Company data"
// @Success 201 {object} controllers.CompanySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/companies [post]
func (c *CompanyController) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	company := &domain.Company{Name: strings.TrimSpace(req.Name), Logo: strings.TrimSpace(req.Logo)}
	if err := c.Service.CreateCompany(r.Context(), company, req.SponsorTier); err != nil {
		writeError(c.Logger, w, r, err, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, &domain.CompanyWithTier{Company: *company, SponsorTier: req.SponsorTier})
}

// UpdateCompany godoc
// @Summary Update a company
// @Description Edits the company and reconciles its sponsorship of the current event with sponsor_tier.
// @Tags admin-companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param companyID path string true "Company ID (UUID)"
// @Param company body CompanyRequest true "Company data"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded or unchanged"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/companies/{companyID} [put]
func (c *CompanyController) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(w, r, "companyID")
	if !ok {
		return
	}
	var req CompanyRequest
	if !helpers.DecodeAndValidateStatus(w, r, &req) {
		return
	}
	company := &domain.Company{ID: companyID, Name: strings.TrimSpace(req.Name), Logo: strings.TrimSpace(req.Logo)}
	status, err := c.Service.UpdateCompany(r.Context(), company, req.SponsorTier)
	if err != nil {
		writeStatusError(c.Logger, w, r, err, "company not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, status, nil)
}

// DeleteCompany godoc
// @Summary Delete a company
// @Tags admin-companies
// @Produce json
// @Security BearerAuth
// @Param companyID path string true "Company ID (UUID)"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/companies/{companyID} [delete]
func (c *CompanyController) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(w, r, "companyID")
	if !ok {
		return
	}
	if err := c.Service.DeleteCompany(r.Context(), companyID); err != nil {
		writeStatusError(c.Logger, w, r, err, "company not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, domain.StatusSucceeded, nil)
}

// SearchDirectory godoc
// @Summary Search the company directory
// @Description Looks up companies by name in the external company directory.
// @Tags admin-companies
// @Produce json
// @Security BearerAuth
// @Param name query string true "Company name"
// @Success 200 {object} controllers.DirectorySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/companies/directory [get]
func (c *CompanyController) SearchDirectory(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "name is required")
		return
	}
	companies, err := c.Service.SearchDirectory(r.Context(), name)
	if err != nil {
		writeError(c.Logger, w, r, err, "not found")
		return
	}
	if companies == nil {
		companies = []*domain.DirectoryCompany{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, companies)
}

// ListSponsors godoc
// @Summary List sponsors of an event
// @Tags admin-sponsors
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.SponsorListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/sponsors [get]
func (c *CompanyController) ListSponsors(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	sponsors, err := c.Service.ListSponsors(r.Context(), eventID)
	if err != nil {
		writeError(c.Logger, w, r, err, "event not found")
		return
	}
	if sponsors == nil {
		sponsors = []*domain.SponsorView{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sponsors)
}

// AddSponsor godoc
// @Summary Add a sponsor to an event
// @Tags admin-sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param sponsor body SponsorRequest true "Company and tier"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded"
// @Failure 400 {object} helpers.StatusEnvelope "status: failed"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/events/{eventID}/sponsors [post]
func (c *CompanyController) AddSponsor(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req SponsorRequest
	if !helpers.DecodeAndValidateStatus(w, r, &req) {
		return
	}
	sponsor := &domain.Sponsor{EventID: eventID, CompanyID: strings.TrimSpace(req.CompanyID), Tier: req.Tier}
	if err := c.Service.AddSponsor(r.Context(), sponsor); err != nil {
		writeStatusError(c.Logger, w, r, err, "event or company not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, domain.StatusSucceeded, nil)
}

// RemoveSponsor godoc
// @Summary Remove a sponsor from an event
// @Tags admin-sponsors
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param companyID path string true "Company ID (UUID)"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/events/{eventID}/sponsors/{companyID} [delete]
func (c *CompanyController) RemoveSponsor(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	companyID, ok := pathID(w, r, "companyID")
	if !ok {
		return
	}
	if err := c.Service.RemoveSponsor(r.Context(), eventID, companyID); err != nil {
		writeStatusError(c.Logger, w, r, err, "sponsor not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, domain.StatusSucceeded, nil)
}
