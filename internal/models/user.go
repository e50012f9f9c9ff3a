package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name"`
	UserName  string    `json:"userName" gorm:"uniqueIndex"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"` // Store hashed password, ignore for JSON serialization
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tweets    []Tweet  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Likes     []Like   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Followers []Follow `json:"-" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
	Following []Follow `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the id app-side so callers get it back without a reload.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=50"`
	UserName string  `json:"userName" validate:"required,min=2,max=30"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	ImageURL *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
