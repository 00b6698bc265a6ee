package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"

	"gorm.io/gorm"
)

type GoalResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Deadline    string `json:"deadline,omitempty"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	CreatedAt   string `json:"createdAt"`
}

func goalResponse(g *models.Goal) GoalResponse {
	out := GoalResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Type:        g.Type,
		Status:      g.Status,
		Progress:    g.Progress,
		Icon:        g.Icon,
		Color:       g.Color,
		CreatedAt:   g.CreatedAt.UTC().Format(time.RFC3339),
	}
	if g.Deadline != nil {
		out.Deadline = g.Deadline.UTC().Format("2006-01-02")
	}
	return out
}

type GoalInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	Progress    *int   `json:"progress"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

func validGoalType(t string) bool {
	switch t {
	case models.GoalTypeShort, models.GoalTypeMedium, models.GoalTypeLong:
		return true
	}
	return false
}

func validGoalStatus(s string) bool {
	switch s {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusArchived:
		return true
	}
	return false
}

func findGoal(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func ListGoals(userID uint) ([]GoalResponse, error) {
	var goals []models.Goal
	err := config.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&goals).Error
	if err != nil {
		return nil, err
	}
	out := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, goalResponse(&goals[i]))
	}
	return out, nil
}

func CreateGoal(userID uint, input GoalInput) (*GoalResponse, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.Type == "" {
		input.Type = models.GoalTypeShort
	}
	if !validGoalType(input.Type) {
		return nil, fmt.Errorf("%w: type must be short, medium or long", ErrValidation)
	}
	if input.Icon == "" {
		input.Icon = "🎯"
	}
	if input.Color == "" {
		input.Color = "bg-[#38BDF8]"
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Status:      models.GoalStatusActive,
		Icon:        input.Icon,
		Color:       input.Color,
	}
	if input.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", input.Deadline)
		if err != nil {
			if deadline, err = time.Parse(time.RFC3339, input.Deadline); err != nil {
				return nil, fmt.Errorf("%w: invalid deadline", ErrValidation)
			}
		}
		goal.Deadline = &deadline
	}

	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	resp := goalResponse(&goal)
	return &resp, nil
}

func UpdateGoal(userID, goalID uint, input GoalInput) (*GoalResponse, error) {
	goal, err := findGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		goal.Title = input.Title
	}
	if input.Description != "" {
		goal.Description = input.Description
	}
	if input.Type != "" {
		if !validGoalType(input.Type) {
			return nil, fmt.Errorf("%w: type must be short, medium or long", ErrValidation)
		}
		goal.Type = input.Type
	}
	if input.Status != "" {
		if !validGoalStatus(input.Status) {
			return nil, fmt.Errorf("%w: status must be active, completed or archived", ErrValidation)
		}
		goal.Status = input.Status
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
		}
		goal.Progress = *input.Progress
	}
	if input.Icon != "" {
		goal.Icon = input.Icon
	}
	if input.Color != "" {
		goal.Color = input.Color
	}
	if input.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", input.Deadline)
		if err != nil {
			if deadline, err = time.Parse(time.RFC3339, input.Deadline); err != nil {
				return nil, fmt.Errorf("%w: invalid deadline", ErrValidation)
			}
		}
		goal.Deadline = &deadline
	}

	if err := config.DB.Save(goal).Error; err != nil {
		return nil, err
	}
	resp := goalResponse(goal)
	return &resp, nil
}

func DeleteGoal(userID, goalID uint) error {
	goal, err := findGoal(userID, goalID)
	if err != nil {
		return err
	}
	return config.DB.Unscoped().Delete(goal).Error
}
