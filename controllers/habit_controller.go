package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/StarDust130/Prime-Day/services"
	"github.com/StarDust130/Prime-Day/utils"

	"github.com/gin-gonic/gin"
)

func ListHabits(c *gin.Context) {
	userID := c.GetUint("userID")
	habits, err := services.ListHabits(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, habits)
}

func CreateHabit(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := services.CreateHabit(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, habit)
}

func UpdateHabit(c *gin.Context) {
	userID := c.GetUint("userID")
	habitID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}

	var input services.HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := services.UpdateHabit(userID, uint(habitID), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

func DeleteHabit(c *gin.Context) {
	userID := c.GetUint("userID")
	habitID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}

	if err := services.DeleteHabit(userID, uint(habitID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted"})
}

type ToggleInput struct {
	HabitID uint   `json:"habitId"`
	Date    string `json:"date"`
}

// ToggleHabit flips one day's completion marker and returns the recomputed
// streak the UI replaces its optimistic value with.
func ToggleHabit(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completed, streak, err := services.ToggleHabit(userID, input.HabitID, input.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"completed": completed,
		"streak":    streak,
	})
}

// HabitHistory lists completion markers, optionally filtered by habit and
// date range: GET /habits/history?habitId=...&from=YYYY-MM-DD&to=YYYY-MM-DD
func HabitHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	var habitID uint
	if v := c.Query("habitId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habitId"})
			return
		}
		habitID = uint(id)
	}

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := utils.DayMarker(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := utils.DayMarker(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = &t
	}

	history, err := services.HabitHistory(userID, habitID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
