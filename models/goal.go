package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GoalTypeShort  = "short"
	GoalTypeMedium = "medium"
	GoalTypeLong   = "long"

	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusArchived  = "archived"
)

type Goal struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Description string
	Type        string `gorm:"size:8;default:short"`
	Deadline    *time.Time
	Status      string `gorm:"size:16;default:active"`
	Progress    int    // 0..100
	Icon        string
	Color       string
}
