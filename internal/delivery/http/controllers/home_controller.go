package controllers

import (
	"log/slog"
	"net/http"

	"techtalks/internal/delivery/http/helpers"
	"techtalks/internal/domain"
)

// HomeSuccessResponse is the success response envelope for GET /home (200).
type HomeSuccessResponse struct {
	Data  *domain.HomePage  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type HomeController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewHomeController(logger *slog.Logger, svc domain.EventService) *HomeController {
	return &HomeController{Logger: logger, Service: svc}
}

// GetHome godoc
// @Summary Landing page data
// @Description Returns the current event with its confirmed count, partners ordered by sponsor tier and the program ordered by start time. event is null when no event exists.
// @Tags public
// @Produce json
// @Success 200 {object} controllers.HomeSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /home [get]
func (c *HomeController) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := c.Service.GetHome(r.Context())
	if err != nil {
		writeError(c.Logger, w, r, err, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, home)
}
