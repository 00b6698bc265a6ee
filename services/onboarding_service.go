package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"

	"gorm.io/gorm"
)

// SaveOnboarding upserts the preference quiz answers for one user.
func SaveOnboarding(userID uint, focus []string, sleep string, obstacles []string) error {
	if len(focus) == 0 || sleep == "" || len(obstacles) == 0 {
		return fmt.Errorf("%w: focus, sleep and obstacles are required", ErrValidation)
	}

	profile := models.OnboardingProfile{
		UserID:    userID,
		Focus:     strings.Join(focus, ","),
		Sleep:     sleep,
		Obstacles: strings.Join(obstacles, ","),
	}
	return config.DB.
		Where("user_id = ?", userID).
		Assign(profile).
		FirstOrCreate(&profile).Error
}

func HasOnboarded(userID uint) (bool, error) {
	var profile models.OnboardingProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func GetOnboarding(userID uint) (*models.OnboardingProfile, error) {
	var profile models.OnboardingProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
