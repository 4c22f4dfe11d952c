package handlers

import (
	"net/http"

	"gabeesh-social/models"
	"gabeesh-social/services"

	"github.com/gin-gonic/gin"
)

type DictionaryHandler struct {
	dictionaryService services.DictionaryService
}

func NewDictionaryHandler(dictionaryService services.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{dictionaryService: dictionaryService}
}

func (h *DictionaryHandler) List(c *gin.Context) {
	entries, err := h.dictionaryService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"can_add": c.GetBool("superAdmin"),
	})
}

// Add inserts a word; only super-admins may add entries.
func (h *DictionaryHandler) Add(c *gin.Context) {
	if !c.GetBool("superAdmin") {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}

	var req models.AddWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.dictionaryService.Add(req, c.GetString("username"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
