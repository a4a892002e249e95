package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"techtalks/internal/delivery/http/helpers"
	"techtalks/internal/delivery/http/middleware"
	"techtalks/internal/domain"
)

// LoginRequest is the request body for POST /admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Username) == "" {
		errs = append(errs, "username is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /admin/login.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// LoginSuccessResponse is the success response envelope for POST /admin/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SessionResponse is the response body for GET /admin/session.
type SessionResponse struct {
	LoggedIn bool `json:"logged_in"`
}

// SessionSuccessResponse is the success response envelope for GET /admin/session (200).
type SessionSuccessResponse struct {
	Data  SessionResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AdminAuthController struct {
	Logger   *slog.Logger
	Service  domain.AdminAuthService
	Guard    domain.Guard
	TokenTTL time.Duration
}

func NewAdminAuthController(logger *slog.Logger, svc domain.AdminAuthService, guard domain.Guard, tokenTTL time.Duration) *AdminAuthController {
	return &AdminAuthController{
		Logger:   logger,
		Service:  svc,
		Guard:    guard,
		TokenTTL: tokenTTL,
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin username and password for a short-lived bearer token.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Admin credentials"
// @Success 200 {object} controllers.LoginSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied; error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/login [post]
func (c *AdminAuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteJSONStatus(w, http.StatusUnauthorized, domain.StatusDenied, &helpers.APIError{Code: helpers.ErrCodeUnauthorized, Message: "invalid credentials"})
			return
		}
		writeError(c.Logger, w, r, err, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(c.TokenTTL.Seconds()),
	})
}

// Session godoc
// @Summary Admin session probe
// @Description Reports whether the bearer token, if any, is a valid admin credential. Always 200.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SessionSuccessResponse
// @Router /admin/session [get]
func (c *AdminAuthController) Session(w http.ResponseWriter, r *http.Request) {
	loggedIn := false
	if token, ok := middleware.BearerToken(r); ok {
		_, err := c.Guard.Authorize(token)
		loggedIn = err == nil
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SessionResponse{LoggedIn: loggedIn})
}
