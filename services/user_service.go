package services

import (
	"errors"
	"fmt"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"
	"github.com/StarDust130/Prime-Day/utils"

	"gorm.io/gorm"
)

// LoginOrSignup implements the combined auth page: an unknown username creates
// a profile, a known username must come with the matching birthday.
func LoginOrSignup(username, birthday string) (user *models.User, hasOnboarded, isLogin bool, err error) {
	if username == "" || birthday == "" {
		return nil, false, false, fmt.Errorf("%w: missing fields", ErrValidation)
	}

	day, err := utils.DayMarker(birthday)
	if err != nil {
		return nil, false, false, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var existing models.User
	err = config.DB.Where("username = ?", username).First(&existing).Error
	switch {
	case err == nil:
		if !utils.SameDay(existing.Birthday, day) {
			return nil, false, false, fmt.Errorf(
				"%w: Username is already taken. If this is you, check your birthday.", ErrUnauthorized)
		}
		onboarded, err := HasOnboarded(existing.ID)
		if err != nil {
			return nil, false, false, err
		}
		return &existing, onboarded, true, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		created := models.User{Username: username, Birthday: day}
		if err := config.DB.Create(&created).Error; err != nil {
			return nil, false, false, err
		}
		return &created, false, false, nil

	default:
		return nil, false, false, err
	}
}

func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func GetAccount(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":             user.ID,
		"username":       user.Username,
		"birthday":       user.Birthday.Format("2006-01-02"),
		"profilePicture": user.ProfilePicture,
	}, nil
}

type AccountInput struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// UpdateAccount renames the caller and, when a base64 avatar is included,
// moderates and uploads it.
func UpdateAccount(userID uint, input AccountInput) (map[string]interface{}, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	var other models.User
	if err := config.DB.Where("username = ?", input.Username).First(&other).Error; err == nil && other.ID != userID {
		return nil, fmt.Errorf("%w: Username is already taken", ErrConflict)
	}
	user.Username = input.Username

	if input.ProfilePicture != "" {
		raw, contentType, err := utils.DecodeDataURL(input.ProfilePicture)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		labels, err := utils.ModerateAvatar(raw)
		if err != nil {
			return nil, err
		}
		if len(labels) > 0 {
			return nil, fmt.Errorf("%w: image rejected (%s)", ErrValidation, labels[0])
		}
		url, err := utils.UploadImage(raw, contentType, user.Username)
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = url
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return GetAccount(userID)
}

// SetFollow maintains the follower lists. These mirror the friend graph but
// are independent edges, matching the product's one-way follow button.
func SetFollow(userID, targetID uint, follow bool) error {
	if targetID == 0 {
		return fmt.Errorf("%w: target user required", ErrValidation)
	}
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}
	target, err := FindUserByID(targetID)
	if err != nil {
		return err
	}

	assoc := config.DB.Model(user).Association("Following")
	if follow {
		return assoc.Append(target)
	}
	return assoc.Delete(target)
}

// SearchUsers returns up to 10 username matches, excluding the caller, each
// annotated with the friend-request status relative to the caller.
type SearchResult struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Status   string `json:"status"` // none | pending_sent | pending_received | accepted
}

func SearchUsers(userID uint, query string) ([]SearchResult, error) {
	if query == "" {
		return []SearchResult{}, nil
	}

	var users []models.User
	err := config.DB.
		Where("LOWER(username) LIKE LOWER(?) AND id <> ?", "%"+query+"%", userID).
		Limit(10).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(users))
	for _, u := range users {
		status := "none"
		var req models.FriendRequest
		err := config.DB.
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				userID, u.ID, u.ID, userID).
			First(&req).Error
		if err == nil {
			switch req.Status {
			case models.RequestAccepted:
				status = "accepted"
			case models.RequestPending:
				if req.SenderID == userID {
					status = "pending_sent"
				} else {
					status = "pending_received"
				}
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		results = append(results, SearchResult{ID: u.ID, Username: u.Username, Status: status})
	}
	return results, nil
}
