package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow represents a directed follow edge: the follower receives the
// following user's posts in their feed. The composite unique index is the
// storage-level guarantee against duplicate edges under concurrent requests.
type Follow struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	FollowerID  uuid.UUID `json:"follower_id" gorm:"type:uuid;index;uniqueIndex:idx_follower_following"`
	FollowingID uuid.UUID `json:"following_id" gorm:"type:uuid;index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `json:"-" gorm:"foreignKey:FollowerID"`
	Following User `json:"-" gorm:"foreignKey:FollowingID"`
}
