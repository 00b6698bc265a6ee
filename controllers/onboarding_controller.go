package controllers

import (
	"net/http"

	"github.com/StarDust130/Prime-Day/services"
	"github.com/StarDust130/Prime-Day/utils"

	"github.com/gin-gonic/gin"
)

type OnboardingInput struct {
	Focus     []string `json:"focus"`
	Sleep     string   `json:"sleep"`
	Obstacles []string `json:"obstacles"`
}

// CompleteOnboarding stores the quiz answers and re-issues the session cookie
// with hasOnboarded set, which unlocks the dashboard.
func CompleteOnboarding(c *gin.Context) {
	userID := c.GetUint("userID")

	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SaveOnboarding(userID, input.Focus, input.Sleep, input.Obstacles); err != nil {
		respondError(c, err)
		return
	}

	if err := utils.SetSessionCookie(c, userID, true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}
