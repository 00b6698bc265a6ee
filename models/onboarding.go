package models

import "gorm.io/gorm"

// OnboardingProfile keeps the preference quiz answers. Focus and Obstacles are
// comma-joined lists.
type OnboardingProfile struct {
	gorm.Model
	UserID    uint `gorm:"uniqueIndex;not null"`
	Focus     string
	Sleep     string
	Obstacles string
}
