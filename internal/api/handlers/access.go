package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chidupudi/ai-assistant/internal/gallery"
	"github.com/chidupudi/ai-assistant/internal/utils"
)

// AccessByPin is the client entry point: a correct PIN grants a
// project-scoped token and moves the store cursor to the project.
func (h *Handler) AccessByPin(c *gin.Context) {
	var input struct {
		PIN string `json:"pin" binding:"required,len=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 6-digit PIN is required"})
		return
	}

	gate := gallery.NewGate(h.store)
	project, err := gate.Submit(input.PIN)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "PIN not recognized"})
		return
	}

	token, err := utils.GenerateClientToken(project.ID, h.cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"project": gin.H{
			"id":           project.ID,
			"name":         project.Name,
			"client_name":  project.ClientName,
			"wedding_date": project.WeddingDate,
		},
	})
}
