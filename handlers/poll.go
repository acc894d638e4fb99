package handlers

import (
	"errors"
	"net/http"
	"time"

	pollRepo "studycompass/database/repository/poll"
	"studycompass/middleware"
	"studycompass/models"
	"studycompass/services/poll"
	"studycompass/utils"

	"github.com/gin-gonic/gin"
)

// PollHandler exposes scheduling polls over HTTP.
type PollHandler struct {
	Svc poll.PollService
}

// NewPollHandler constructs a PollHandler.
func NewPollHandler(svc poll.PollService) *PollHandler {
	return &PollHandler{Svc: svc}
}

// CreatePollHandler opens a new scheduling poll.
// POST /api/polls (authenticated)
func (h *PollHandler) CreatePollHandler(c *gin.Context) {
	var input struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), input.Title, c.GetString(middleware.UserIDKey))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create poll", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// RespondHandler records one participant's selected blocks.
// POST /api/polls/:id/responses
func (h *PollHandler) RespondHandler(c *gin.Context) {
	var input models.PollResponse
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.Respond(c.Request.Context(), c.Param("id"), input); err != nil {
		if errors.Is(err, pollRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "poll not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "response rejected", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}

// OverlapsHandler returns the poll's ranked overlap windows.
// GET /api/polls/:id/overlaps
func (h *PollHandler) OverlapsHandler(c *gin.Context) {
	windows, err := h.Svc.Overlaps(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pollRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "poll not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to rank overlaps", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

// ValidateBlocksHandler dry-runs block validation for client-side forms.
// POST /api/polls/validate-blocks
func (h *PollHandler) ValidateBlocksHandler(c *gin.Context) {
	var input struct {
		Blocks []models.TimeBlock `json:"blocks" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	errs := poll.ValidateBlocks(input.Blocks, time.Now())
	c.JSON(http.StatusOK, gin.H{"valid": len(errs) == 0, "errors": errs})
}
