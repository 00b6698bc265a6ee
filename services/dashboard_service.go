package services

import (
	"sort"
	"time"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"
	"github.com/StarDust130/Prime-Day/utils"
)

type DashboardStats struct {
	ActiveHabits   int `json:"activeHabits"`
	CompletedToday int `json:"completedToday"`
	ActiveGoals    int `json:"activeGoals"`
}

type Dashboard struct {
	User          map[string]interface{} `json:"user"`
	Stats         DashboardStats         `json:"stats"`
	UpcomingGoals []GoalResponse         `json:"upcomingGoals"`
	TodaysHabits  []HabitResponse        `json:"todaysHabits"`
}

// GetDashboard aggregates the landing-page numbers: habit counts, today's
// completions, active goals and the three nearest deadlines.
func GetDashboard(userID uint) (*Dashboard, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	habits, err := ListHabits(userID)
	if err != nil {
		return nil, err
	}

	goals, err := ListGoals(userID)
	if err != nil {
		return nil, err
	}

	today := utils.DayStart(time.Now())
	var completedToday int64
	if err := config.DB.Model(&models.HabitCompletion{}).
		Where("user_id = ? AND date = ?", userID, today).
		Count(&completedToday).Error; err != nil {
		return nil, err
	}

	activeGoals := 0
	upcoming := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		if g.Status != models.GoalStatusActive {
			continue
		}
		activeGoals++
		if g.Deadline != "" {
			upcoming = append(upcoming, g)
		}
	}
	// ISO dates sort lexicographically
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Deadline < upcoming[j].Deadline })
	if len(upcoming) > 3 {
		upcoming = upcoming[:3]
	}

	todaysHabits := habits
	if len(todaysHabits) > 3 {
		todaysHabits = todaysHabits[:3]
	}

	return &Dashboard{
		User: map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
		},
		Stats: DashboardStats{
			ActiveHabits:   len(habits),
			CompletedToday: int(completedToday),
			ActiveGoals:    activeGoals,
		},
		UpcomingGoals: upcoming,
		TodaysHabits:  todaysHabits,
	}, nil
}
