// controllers/activity_controller.go
package controllers

import (
	"net/http"

	"github.com/StarDust130/Prime-Day/services"

	"github.com/gin-gonic/gin"
)

func LogActivity(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := services.LogActivity(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func TodayActivities(c *gin.Context) {
	userID := c.GetUint("userID")
	activities, err := services.TodayActivities(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
