package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/StarDust130/Prime-Day/services"

	"github.com/gin-gonic/gin"
)

type CoachController struct {
	Coach *services.CoachService
}

func NewCoachController(coach *services.CoachService) *CoachController {
	return &CoachController{Coach: coach}
}

// DailyTip never surfaces AI failures to the client; a canned line stands in.
func (cc *CoachController) DailyTip(c *gin.Context) {
	userID := c.GetUint("userID")

	tip, err := cc.Coach.DailyTip(userID)
	if err != nil {
		log.Printf("daily tip error: %v", err)
		c.JSON(http.StatusOK, gin.H{"tip": "Make today count!"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tip": tip})
}

type ChatInput struct {
	Message string `json:"message"`
}

func (cc *CoachController) Chat(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := cc.Coach.Chat(userID, input.Message)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondError(c, err)
			return
		}
		log.Printf("coach chat error: %v", err)
		c.JSON(http.StatusOK, gin.H{"response": "I'm having trouble connecting to my brain right now."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": response})
}

func (cc *CoachController) SuggestHabits(c *gin.Context) {
	userID := c.GetUint("userID")

	suggestions, err := cc.Coach.SuggestHabits(userID, c.Query("category"))
	if err != nil {
		log.Printf("habit suggestion error: %v", err)
		c.JSON(http.StatusOK, gin.H{"suggestions": []services.HabitSuggestion{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
