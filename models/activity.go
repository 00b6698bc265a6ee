package models

import (
	"time"

	"gorm.io/gorm"
)

type Activity struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null"`
	Type            string    `gorm:"size:16;not null"` // "gym" | "meditation" | "study" | "work" | "other"
	Title           string
	StartTime       time.Time `gorm:"index;not null"`
	EndTime         *time.Time
	DurationMinutes float64
	Notes           string
}
