package models

import (
	"time"

	"gorm.io/gorm"
)

// User identity is the username+birthday pair; there is no password.
type User struct {
	gorm.Model
	Username       string `gorm:"uniqueIndex;not null"`
	Birthday       time.Time
	ProfilePicture string

	Followers []*User `gorm:"many2many:user_follows;joinForeignKey:followed_id;joinReferences:follower_id"`
	Following []*User `gorm:"many2many:user_follows;joinForeignKey:follower_id;joinReferences:followed_id"`
}
