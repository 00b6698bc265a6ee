package models

import "gorm.io/gorm"

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// FriendRequest is a directed edge between two users. One row exists per pair;
// a rejected edge can be reset to pending by either side re-initiating.
type FriendRequest struct {
	gorm.Model
	SenderID   uint   `gorm:"uniqueIndex:idx_request_pair;not null"`
	ReceiverID uint   `gorm:"uniqueIndex:idx_request_pair;not null"`
	Status     string `gorm:"size:16;default:pending"`
}
