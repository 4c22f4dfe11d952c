package handlers

import (
	"errors"
	"net/http"

	"gabeesh-social/models"
	"gabeesh-social/services"

	"github.com/gin-gonic/gin"
)

type PollHandler struct {
	pollService services.PollService
}

func NewPollHandler(pollService services.PollService) *PollHandler {
	return &PollHandler{pollService: pollService}
}

// List returns every poll with the open/voted/expired state derived for
// the requesting user.
func (h *PollHandler) List(c *gin.Context) {
	username := c.GetString("username")

	polls, err := h.pollService.List(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"polls": polls})
}

func (h *PollHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"question", "options", "expires_at"}})
}

func (h *PollHandler) Create(c *gin.Context) {
	var req models.CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poll, err := h.pollService.Create(req)
	if err != nil {
		// The original served this as a bare 400.
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, poll)
}

// Vote casts the session's vote with its snapshot weight.
func (h *PollHandler) Vote(c *gin.Context) {
	username := c.GetString("username")
	weight := c.GetInt("votePower")

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.pollService.CastVote(req.PollID, username, *req.Choice, weight); err != nil {
		if errors.Is(err, services.ErrPollNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "vote recorded"})
}
