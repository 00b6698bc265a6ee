package controllers

import (
	"net/http"
	"time"

	"github.com/StarDust130/Prime-Day/services"
	"github.com/StarDust130/Prime-Day/utils"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")
	dashboard, err := services.GetDashboard(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dashboard})
}

func GetPrimeScore(c *gin.Context) {
	userID := c.GetUint("userID")
	score, err := services.GetPrimeScore(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

// GetWeeklyStats: GET /stats/weekly?week_start=YYYY-MM-DD (defaults to the
// current week).
func GetWeeklyStats(c *gin.Context) {
	userID := c.GetUint("userID")

	weekStart := time.Now()
	if v := c.Query("week_start"); v != "" {
		t, err := utils.DayMarker(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start"})
			return
		}
		weekStart = t
	}

	overview, err := services.GetWeeklyOverview(userID, weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
