package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tweet is a post. A nil ParentID means a top-level post; a set ParentID
// makes it a reply into the self-referential reply tree.
type Tweet struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Content   string     `json:"content"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;index"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Author  User    `json:"-" gorm:"foreignKey:UserID"`
	Likes   []Like  `json:"-" gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
	Replies []Tweet `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

func (t *Tweet) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type CreateTweetRequest struct {
	Content string `json:"content" validate:"required"`
}
