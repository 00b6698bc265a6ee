package models

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:32"` // "friend.request" | "friend.accepted" | "habit.milestone"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
