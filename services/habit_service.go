package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"
	"github.com/StarDust130/Prime-Day/utils"

	"gorm.io/gorm"
)

type HabitResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon"`
	Color          string    `json:"color"`
	Priority       string    `json:"priority"`
	Streak         int       `json:"streak"`
	CompletedDates []string  `json:"completedDates"`
	CreatedAt      time.Time `json:"createdAt"`
}

type HabitInput struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Priority string `json:"priority"`
}

func validPriority(p string) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

func habitResponse(h *models.Habit) HabitResponse {
	dates := make([]string, 0, len(h.Completions))
	for _, c := range h.Completions {
		dates = append(dates, c.Date.UTC().Format(time.RFC3339))
	}
	return HabitResponse{
		ID:             h.ID,
		Name:           h.Name,
		Icon:           h.Icon,
		Color:          h.Color,
		Priority:       h.Priority,
		Streak:         h.Streak,
		CompletedDates: dates,
		CreatedAt:      h.CreatedAt,
	}
}

func findHabit(userID, habitID uint) (*models.Habit, error) {
	var habit models.Habit
	err := config.DB.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &habit, nil
}

func ListHabits(userID uint) ([]HabitResponse, error) {
	var habits []models.Habit
	err := config.DB.
		Where("user_id = ?", userID).
		Preload("Completions", func(db *gorm.DB) *gorm.DB { return db.Order("date asc") }).
		Order("created_at desc").
		Find(&habits).Error
	if err != nil {
		return nil, err
	}

	out := make([]HabitResponse, 0, len(habits))
	for i := range habits {
		out = append(out, habitResponse(&habits[i]))
	}
	return out, nil
}

func CreateHabit(userID uint, input HabitInput) (*HabitResponse, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !validPriority(input.Priority) {
		return nil, fmt.Errorf("%w: priority must be low, medium or high", ErrValidation)
	}

	habit := models.Habit{
		UserID:   userID,
		Name:     input.Name,
		Icon:     input.Icon,
		Color:    input.Color,
		Priority: input.Priority,
	}
	if err := config.DB.Create(&habit).Error; err != nil {
		return nil, err
	}
	resp := habitResponse(&habit)
	return &resp, nil
}

// UpdateHabit touches display metadata only; completions and streak have a
// single write path, the toggle.
func UpdateHabit(userID, habitID uint, input HabitInput) (*HabitResponse, error) {
	habit, err := findHabit(userID, habitID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		habit.Name = input.Name
	}
	if input.Icon != "" {
		habit.Icon = input.Icon
	}
	if input.Color != "" {
		habit.Color = input.Color
	}
	if input.Priority != "" {
		if !validPriority(input.Priority) {
			return nil, fmt.Errorf("%w: priority must be low, medium or high", ErrValidation)
		}
		habit.Priority = input.Priority
	}

	if err := config.DB.Save(habit).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Where("habit_id = ?", habit.ID).Order("date asc").Find(&habit.Completions).Error; err != nil {
		return nil, err
	}
	resp := habitResponse(habit)
	return &resp, nil
}

func DeleteHabit(userID, habitID uint) error {
	habit, err := findHabit(userID, habitID)
	if err != nil {
		return err
	}

	if err := config.DB.Where("habit_id = ?", habit.ID).Delete(&models.HabitCompletion{}).Error; err != nil {
		return err
	}
	return config.DB.Unscoped().Delete(habit).Error
}

// ToggleHabit flips the completion marker for one calendar day and recomputes
// the stored streak. The marker set has two states per day, done and not done,
// and this flip is the only transition.
func ToggleHabit(userID, habitID uint, rawDate string) (completed bool, streak int, err error) {
	habit, err := findHabit(userID, habitID)
	if err != nil {
		return false, 0, err
	}

	day, err := utils.DayMarker(rawDate)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var existing models.HabitCompletion
	err = config.DB.Where("habit_id = ? AND date = ?", habit.ID, day).First(&existing).Error
	switch {
	case err == nil:
		if err := config.DB.Delete(&existing).Error; err != nil {
			return false, 0, err
		}
		completed = false
	case errors.Is(err, gorm.ErrRecordNotFound):
		marker := models.HabitCompletion{HabitID: habit.ID, UserID: userID, Date: day}
		if err := config.DB.Create(&marker).Error; err != nil {
			return false, 0, err
		}
		completed = true
	default:
		return false, 0, err
	}

	streak, err = recomputeStreak(habit)
	if err != nil {
		return false, 0, err
	}

	if completed && streak > 0 && streak%7 == 0 {
		Notify(userID, "habit.milestone", fmt.Sprintf("%s is on a %d day streak! 🔥", habit.Name, streak))
	}
	return completed, streak, nil
}

// recomputeStreak persists the derived counter after every toggle. The default
// formula counts every completion ever recorded; STREAK_MODE=consecutive
// switches to a walk backward from today while each prior day is marked.
func recomputeStreak(habit *models.Habit) (int, error) {
	var completions []models.HabitCompletion
	if err := config.DB.Where("habit_id = ?", habit.ID).Order("date asc").Find(&completions).Error; err != nil {
		return 0, err
	}

	streak := len(completions)
	if os.Getenv("STREAK_MODE") == "consecutive" {
		streak = consecutiveRun(completions, utils.DayStart(time.Now()))
	}

	habit.Streak = streak
	if err := config.DB.Model(habit).Update("streak", streak).Error; err != nil {
		return 0, err
	}
	return streak, nil
}

func consecutiveRun(completions []models.HabitCompletion, today time.Time) int {
	marked := make(map[time.Time]bool, len(completions))
	for _, c := range completions {
		marked[utils.DayStart(c.Date)] = true
	}

	run := 0
	day := today
	// a miss today does not break the run; yesterday's chain still counts
	if !marked[day] {
		day = day.AddDate(0, 0, -1)
	}
	for marked[day] {
		run++
		day = day.AddDate(0, 0, -1)
	}
	return run
}

// HistoryEntry is one completion marker, as returned by the history endpoint.
type HistoryEntry struct {
	HabitID uint   `json:"habitId"`
	Date    string `json:"date"`
}

func HabitHistory(userID uint, habitID uint, from, to *time.Time) ([]HistoryEntry, error) {
	q := config.DB.Where("user_id = ?", userID)
	if habitID != 0 {
		q = q.Where("habit_id = ?", habitID)
	}
	if from != nil {
		q = q.Where("date >= ?", utils.DayStart(*from))
	}
	if to != nil {
		q = q.Where("date <= ?", utils.DayStart(*to))
	}

	var completions []models.HabitCompletion
	if err := q.Order("date asc").Find(&completions).Error; err != nil {
		return nil, err
	}

	out := make([]HistoryEntry, 0, len(completions))
	for _, c := range completions {
		out = append(out, HistoryEntry{HabitID: c.HabitID, Date: c.Date.UTC().Format(time.RFC3339)})
	}
	return out, nil
}
