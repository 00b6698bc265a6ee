package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/StarDust130/Prime-Day/models"

	"gorm.io/gorm"
)

type notifyDeps struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService
}

var _notify notifyDeps

// InitNotifyDeps wires the notification sinks once at startup. Nil hub or push
// simply disables that sink.
func InitNotifyDeps(db *gorm.DB, hub *RealtimeHub, push *PushService) {
	_notify = notifyDeps{db: db, hub: hub, push: push}
}

// Notify records a notification for userID and fans it out to the realtime
// feed and registered push devices. Safe to call anywhere; a failure in one
// sink never blocks the caller's request.
func Notify(userID uint, typ, message string) {
	if _notify.db == nil {
		return
	}
	n := &models.Notification{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _notify.db.Create(n).Error

	if _notify.hub != nil {
		_notify.hub.Broadcast(userID, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
	if _notify.push != nil {
		_notify.push.PushToUser(userID, "Prime Day", message, map[string]string{
			"type": typ, "notificationId": fmt.Sprintf("%d", n.ID),
		})
	}
}

// ListNotifications returns the latest 50 rows for the caller.
func ListNotifications(userID uint) ([]models.Notification, error) {
	if _notify.db == nil {
		return nil, errors.New("notification store not initialized")
	}
	var rows []models.Notification
	err := _notify.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(50).
		Find(&rows).Error
	return rows, err
}
