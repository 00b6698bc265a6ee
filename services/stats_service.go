package services

import (
	"time"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"
	"github.com/StarDust130/Prime-Day/utils"
)

type DayStat struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

type WeeklyOverview struct {
	WeekStart      string    `json:"weekStart"`
	Days           []DayStat `json:"days"`
	TotalHabits    int       `json:"totalHabits"`
	CompletionRate float64   `json:"completionRate"`
}

// GetWeeklyOverview counts completion markers per day across the week
// starting at weekStart (Monday).
func GetWeeklyOverview(userID uint, weekStart time.Time) (*WeeklyOverview, error) {
	start := utils.StartOfWeek(weekStart)
	end := start.AddDate(0, 0, 7)

	var completions []models.HabitCompletion
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&completions).Error
	if err != nil {
		return nil, err
	}

	byDay := map[string]int{}
	for _, c := range completions {
		byDay[utils.DayStart(c.Date).Format("2006-01-02")]++
	}

	var habitCount int64
	if err := config.DB.Model(&models.Habit{}).Where("user_id = ?", userID).Count(&habitCount).Error; err != nil {
		return nil, err
	}

	out := &WeeklyOverview{
		WeekStart:   start.Format("2006-01-02"),
		Days:        make([]DayStat, 0, 7),
		TotalHabits: int(habitCount),
	}
	total := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out.Days = append(out.Days, DayStat{Date: key, Completed: byDay[key]})
		total += byDay[key]
	}
	if habitCount > 0 {
		out.CompletionRate = float64(total) / float64(habitCount*7)
	}
	return out, nil
}
