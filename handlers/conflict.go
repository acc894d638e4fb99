package handlers

import (
	"net/http"

	"studycompass/middleware"
	"studycompass/models"
	"studycompass/services/conflict"
	"studycompass/utils"

	"github.com/gin-gonic/gin"
)

// ConflictHandler exposes conflict detection over HTTP.
type ConflictHandler struct {
	Svc conflict.ConflictService
}

// NewConflictHandler constructs a ConflictHandler.
func NewConflictHandler(svc conflict.ConflictService) *ConflictHandler {
	return &ConflictHandler{Svc: svc}
}

// DetectConflictsHandler checks the caller's candidate blocks against their
// enabled commitment sources.
// POST /api/conflicts/check (authenticated)
func (h *ConflictHandler) DetectConflictsHandler(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input struct {
		Blocks []models.TimeBlock   `json:"blocks" binding:"required"`
		Prefs  models.ConflictPrefs `json:"prefs"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	records, err := h.Svc.Detect(c.Request.Context(), userID, input.Blocks, input.Prefs)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "conflict check rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": records})
}
