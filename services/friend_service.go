package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"
	"github.com/StarDust130/Prime-Day/utils"

	"gorm.io/gorm"
)

func findRequestBetween(a, b uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	err := config.DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// SendFriendRequest creates (or revives) the directed pending edge from
// sender to target.
func SendFriendRequest(senderID, targetID uint) error {
	if targetID == 0 {
		return fmt.Errorf("%w: target user required", ErrValidation)
	}
	if senderID == targetID {
		return fmt.Errorf("%w: cannot add yourself", ErrValidation)
	}
	if _, err := FindUserByID(targetID); err != nil {
		return err
	}

	existing, err := findRequestBetween(senderID, targetID)
	switch {
	case err == nil:
		switch existing.Status {
		case models.RequestAccepted:
			return fmt.Errorf("%w: already friends", ErrValidation)
		case models.RequestPending:
			return fmt.Errorf("%w: request already pending", ErrValidation)
		}
		// rejected earlier: reset to pending with the re-initiator as sender
		existing.Status = models.RequestPending
		existing.SenderID = senderID
		existing.ReceiverID = targetID
		if err := config.DB.Save(existing).Error; err != nil {
			return err
		}
	case errors.Is(err, ErrNotFound):
		req := models.FriendRequest{SenderID: senderID, ReceiverID: targetID, Status: models.RequestPending}
		if err := config.DB.Create(&req).Error; err != nil {
			return err
		}
	default:
		return err
	}

	if sender, err := FindUserByID(senderID); err == nil {
		Notify(targetID, "friend.request", fmt.Sprintf("%s wants to be your friend", sender.Username))
	}
	return nil
}

// RespondToRequest lets the receiver accept or reject a pending request.
func RespondToRequest(userID, requestID uint, action string) (string, error) {
	var req models.FriendRequest
	if err := config.DB.First(&req, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if req.ReceiverID != userID {
		return "", ErrForbidden
	}

	switch action {
	case "accept":
		req.Status = models.RequestAccepted
	case "reject":
		req.Status = models.RequestRejected
	default:
		return "", fmt.Errorf("%w: invalid action", ErrValidation)
	}

	if err := config.DB.Save(&req).Error; err != nil {
		return "", err
	}

	if req.Status == models.RequestAccepted {
		if receiver, err := FindUserByID(userID); err == nil {
			Notify(req.SenderID, "friend.accepted", fmt.Sprintf("%s accepted your friend request 🎉", receiver.Username))
		}
	}
	return req.Status, nil
}

// CancelRequest removes a pending request; only the sender may cancel.
func CancelRequest(userID, requestID uint) error {
	var req models.FriendRequest
	if err := config.DB.First(&req, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if req.SenderID != userID {
		return ErrForbidden
	}
	return config.DB.Unscoped().Delete(&req).Error
}

type RequestInfo struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

// PendingRequests returns incoming and outgoing pending edges with the other
// party's username resolved.
func PendingRequests(userID uint) (incoming, outgoing []RequestInfo, err error) {
	incoming = []RequestInfo{}
	outgoing = []RequestInfo{}

	var reqs []models.FriendRequest
	err = config.DB.
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, models.RequestPending).
		Find(&reqs).Error
	if err != nil {
		return nil, nil, err
	}

	for _, r := range reqs {
		otherID := r.SenderID
		if r.SenderID == userID {
			otherID = r.ReceiverID
		}
		other, err := FindUserByID(otherID)
		if err != nil {
			continue
		}
		info := RequestInfo{ID: r.ID, UserID: other.ID, Username: other.Username}
		if r.ReceiverID == userID {
			incoming = append(incoming, info)
		} else {
			outgoing = append(outgoing, info)
		}
	}
	return incoming, outgoing, nil
}

// FriendSummary is one leaderboard row.
type FriendSummary struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	CompletedToday int    `json:"completedToday"`
	Streak         int    `json:"streak"`
}

// ListFriends resolves every accepted edge touching the user and aggregates
// each friend's habit stats for the leaderboard view.
func ListFriends(userID uint) ([]FriendSummary, error) {
	var friendships []models.FriendRequest
	err := config.DB.
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, models.RequestAccepted).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	today := utils.DayStart(time.Now())
	summaries := make([]FriendSummary, 0, len(friendships))
	for _, f := range friendships {
		friendID := f.SenderID
		if f.SenderID == userID {
			friendID = f.ReceiverID
		}
		friend, err := FindUserByID(friendID)
		if err != nil {
			continue
		}

		var habits []models.Habit
		if err := config.DB.Where("user_id = ?", friendID).Find(&habits).Error; err != nil {
			return nil, err
		}

		var completedToday int64
		if err := config.DB.Model(&models.HabitCompletion{}).
			Where("user_id = ? AND date = ?", friendID, today).
			Count(&completedToday).Error; err != nil {
			return nil, err
		}

		maxStreak := 0
		for _, h := range habits {
			if h.Streak > maxStreak {
				maxStreak = h.Streak
			}
		}

		summaries = append(summaries, FriendSummary{
			ID:             friend.ID,
			Username:       friend.Username,
			CompletedToday: int(completedToday),
			Streak:         maxStreak,
		})
	}
	return summaries, nil
}
