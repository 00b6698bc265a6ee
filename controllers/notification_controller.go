package controllers

import (
	"net/http"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"
	"github.com/StarDust130/Prime-Day/services"

	"github.com/gin-gonic/gin"
)

func ListNotifications(c *gin.Context) {
	userID := c.GetUint("userID")
	rows, err := services.ListNotifications(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": rows})
}

type toggleInput struct {
	Enabled bool `json:"enabled"`
}

// POST /notifications/toggle flips push delivery for every registered device.
func ToggleNotifications(c *gin.Context) {
	userID := c.GetUint("userID")

	var input toggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", userID).
		Update("enabled", input.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notifications updated", "enabled": input.Enabled})
}
