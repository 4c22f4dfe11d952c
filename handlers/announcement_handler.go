package handlers

import (
	"net/http"

	"gabeesh-social/models"
	"gabeesh-social/services"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	announcementService services.AnnouncementService
}

func NewAnnouncementHandler(announcementService services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.announcementService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"announcements": announcements})
}

func (h *AnnouncementHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"title", "content"}})
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	author := c.GetString("username")

	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.Create(req, author)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}
