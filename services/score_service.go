package services

import (
	"time"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"
	"github.com/StarDust130/Prime-Day/utils"
)

type PrimeScore struct {
	Score    int    `json:"primeScore"`
	Category string `json:"category"`
}

// GetPrimeScore derives the 0-100 daily score from habit completions and
// logged activity minutes.
func GetPrimeScore(userID uint) (*PrimeScore, error) {
	var habits []models.Habit
	if err := config.DB.Where("user_id = ?", userID).Find(&habits).Error; err != nil {
		return nil, err
	}

	today := utils.DayStart(time.Now())
	var completedToday int64
	if err := config.DB.Model(&models.HabitCompletion{}).
		Where("user_id = ? AND date = ?", userID, today).
		Count(&completedToday).Error; err != nil {
		return nil, err
	}

	bestStreak := 0
	for _, h := range habits {
		if h.Streak > bestStreak {
			bestStreak = h.Streak
		}
	}

	minutes, err := todayActivityMinutes(userID)
	if err != nil {
		return nil, err
	}

	score := utils.ComputePrimeScore(len(habits), int(completedToday), bestStreak, minutes)
	return &PrimeScore{Score: score, Category: utils.ScoreCategory(score)}, nil
}
