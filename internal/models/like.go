package models

import (
	"time"

	"github.com/google/uuid"
)

// Like marks a tweet as liked by a user. The composite unique index is the
// storage-level guarantee against duplicate likes under concurrent requests.
type Like struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;uniqueIndex:idx_user_tweet"`
	TweetID   uuid.UUID `json:"tweet_id" gorm:"type:uuid;index;uniqueIndex:idx_user_tweet"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Tweet Tweet `json:"-" gorm:"foreignKey:TweetID"`
}
