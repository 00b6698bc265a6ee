package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Habit struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Icon     string
	Color    string
	Priority string `gorm:"size:8;default:medium"`
	Streak   int

	Completions []HabitCompletion
}

// HabitCompletion marks one habit as done on one calendar day. Date is always
// a UTC midnight marker, and (habit_id, date) is unique so the set semantics
// hold at the storage layer too.
type HabitCompletion struct {
	ID        uint      `gorm:"primaryKey"`
	HabitID   uint      `gorm:"uniqueIndex:idx_habit_day;not null"`
	UserID    uint      `gorm:"index;not null"`
	Date      time.Time `gorm:"uniqueIndex:idx_habit_day;not null"`
	CreatedAt time.Time
}
