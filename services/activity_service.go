package services

import (
	"fmt"
	"time"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"
	"github.com/StarDust130/Prime-Day/utils"
)

type ActivityInput struct {
	Type            string  `json:"type"`
	Title           string  `json:"title"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes float64 `json:"durationMinutes"`
	Notes           string  `json:"notes"`
}

func validActivityType(t string) bool {
	switch t {
	case "gym", "meditation", "study", "work", "other":
		return true
	}
	return false
}

func LogActivity(userID uint, input ActivityInput) (*models.Activity, error) {
	if input.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}
	if !validActivityType(input.Type) {
		return nil, fmt.Errorf("%w: unknown activity type %q", ErrValidation, input.Type)
	}

	start := time.Now()
	if input.StartTime != "" {
		t, err := time.Parse(time.RFC3339, input.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startTime", ErrValidation)
		}
		start = t
	}

	activity := models.Activity{
		UserID:          userID,
		Type:            input.Type,
		Title:           input.Title,
		StartTime:       start,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
	}
	if input.EndTime != "" {
		t, err := time.Parse(time.RFC3339, input.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endTime", ErrValidation)
		}
		activity.EndTime = &t
	}

	if err := config.DB.Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// TodayActivities lists the caller's entries inside today's local-day window,
// newest first.
func TodayActivities(userID uint) ([]models.Activity, error) {
	start := utils.DayStart(time.Now())
	end := start.Add(24 * time.Hour)

	var activities []models.Activity
	err := config.DB.
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, start, end).
		Order("start_time desc").
		Find(&activities).Error
	return activities, err
}

// todayActivityMinutes sums logged minutes for the prime score.
func todayActivityMinutes(userID uint) (float64, error) {
	activities, err := TodayActivities(userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, a := range activities {
		total += a.DurationMinutes
	}
	return total, nil
}
