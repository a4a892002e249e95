package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"techtalks/internal/delivery/http/helpers"
	"techtalks/internal/domain"
)

// RoomRequest is the request body for POST /admin/rooms and PUT /admin/rooms/{roomID}.
type RoomRequest struct {
	Name       string `json:"name"`
	Building   string `json:"building"`
	MazemapURL string `json:"mazemap_url"`
}

// Validate implements Validator.
func (rr RoomRequest) Validate() []string {
	if strings.TrimSpace(rr.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

func (rr RoomRequest) toRoom() *domain.Room {
	return &domain.Room{
		Name:       strings.TrimSpace(rr.Name),
		Building:   strings.TrimSpace(rr.Building),
		MazemapURL: strings.TrimSpace(rr.MazemapURL),
	}
}

// RoomSuccessResponse is the success response envelope for POST /admin/rooms (201).
type RoomSuccessResponse struct {
	Data  *domain.Room      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RoomListSuccessResponse is the success response envelope for GET /admin/rooms (200).
type RoomListSuccessResponse struct {
	Data  []*domain.Room    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type RoomController struct {
	Logger  *slog.Logger
	Service domain.RoomService
}

func NewRoomController(logger *slog.Logger, svc domain.RoomService) *RoomController {
	return &RoomController{Logger: logger, Service: svc}
}

// ListRooms godoc
// @Summary List rooms
// @Tags admin-rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.RoomListSuccessResponse
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/rooms [get]
func (c *RoomController) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := c.Service.ListRooms(r.Context())
	if err != nil {
		writeError(c.Logger, w, r, err, "not found")
		return
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rooms)
}

// CreateRoom godoc
// @Summary Create a room
// @Tags admin-rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param room body RoomRequest true "Room data"
// @Success 201 {object} controllers.RoomSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/rooms [post]
func (c *RoomController) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req RoomRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	room := req.toRoom()
	if err := c.Service.CreateRoom(r.Context(), room); err != nil {
		writeError(c.Logger, w, r, err, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, room)
}

// UpdateRoom godoc
// @Summary Update a room
// @Tags admin-rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID (UUID)"
// @Param room body RoomRequest true "Room data"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded or unchanged"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/rooms/{roomID} [put]
func (c *RoomController) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(w, r, "roomID")
	if !ok {
		return
	}
	var req RoomRequest
	if !helpers.DecodeAndValidateStatus(w, r, &req) {
		return
	}
	room := req.toRoom()
	room.ID = roomID
	status, err := c.Service.UpdateRoom(r.Context(), room)
	if err != nil {
		writeStatusError(c.Logger, w, r, err, "room not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, status, nil)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Tags admin-rooms
// @Produce json
// @Security BearerAuth
// @Param roomID path string true "Room ID (UUID)"
// @Success 200 {object} helpers.StatusEnvelope "status: succeeded"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.StatusEnvelope "status: denied"
// @Failure 404 {object} helpers.StatusEnvelope "status: failed"
// @Failure 500 {object} helpers.StatusEnvelope "status: failed"
// @Router /admin/rooms/{roomID} [delete]
func (c *RoomController) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(w, r, "roomID")
	if !ok {
		return
	}
	if err := c.Service.DeleteRoom(r.Context(), roomID); err != nil {
		writeStatusError(c.Logger, w, r, err, "room not found")
		return
	}
	helpers.WriteJSONStatus(w, http.StatusOK, domain.StatusSucceeded, nil)
}
