package handlers

import (
	"errors"
	"net/http"
	"time"

	roomRepo "studycompass/database/repository/room"
	"studycompass/services/availability"
	"studycompass/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the availability engine over HTTP.
type AvailabilityHandler struct {
	Svc availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// parseAt reads the optional "at" query parameter (RFC3339), defaulting to now.
func parseAt(c *gin.Context) (time.Time, bool) {
	raw := c.Query("at")
	if raw == "" {
		return time.Now(), true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid 'at' parameter", "expected an RFC3339 timestamp")
		return time.Time{}, false
	}
	return at, true
}

// RoomFreeStatusHandler reports a room's current free/busy state.
// GET /api/rooms/:id/free?at=RFC3339
func (h *AvailabilityHandler) RoomFreeStatusHandler(c *gin.Context) {
	at, ok := parseAt(c)
	if !ok {
		return
	}

	status, err := h.Svc.RoomFreeStatus(c.Request.Context(), c.Param("id"), at)
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "room not found", c.Param("id"))
		case errors.Is(err, availability.ErrMalformedInterval):
			utils.JSONError(c, http.StatusUnprocessableEntity, "schedule data is malformed", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to compute free status", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, status)
}

// FreeRoomsHandler lists every room currently free.
// GET /api/rooms/free?at=RFC3339
func (h *AvailabilityHandler) FreeRoomsHandler(c *gin.Context) {
	at, ok := parseAt(c)
	if !ok {
		return
	}

	free, err := h.Svc.FreeRooms(c.Request.Context(), at)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list free rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": free})
}

// CheckRoomHandler determines whether a room can be reserved for a range.
// POST /api/rooms/:id/check
func (h *AvailabilityHandler) CheckRoomHandler(c *gin.Context) {
	var input struct {
		Start time.Time `json:"start_time" binding:"required"`
		End   time.Time `json:"end_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.CheckRoom(c.Request.Context(), c.Param("id"), input.Start, input.End)
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "room not found", c.Param("id"))
		case errors.Is(err, availability.ErrInvalidRange):
			utils.JSONError(c, http.StatusBadRequest, "invalid time range", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to check availability", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
