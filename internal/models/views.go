package models

import (
	"time"

	"github.com/google/uuid"
)

// View types are the response projections. Anything reachable as a relation
// of a relation is rendered shallowly: scalar identity fields only, no
// further nested collections. Reply nesting is added by the tweet service
// with an explicit depth counter, never here.

// UserSummary is the shallow projection of a user.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeView struct {
	UserID    uuid.UUID    `json:"user_id"`
	TweetID   uuid.UUID    `json:"tweet_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	User      *UserSummary `json:"user,omitempty"`
}

type TweetView struct {
	ID        uuid.UUID   `json:"id"`
	Content   string      `json:"content"`
	UserID    uuid.UUID   `json:"user_id"`
	ParentID  *uuid.UUID  `json:"parent_id,omitempty"`
	Author    UserSummary `json:"author"`
	Likes     []LikeView  `json:"likes"`
	Replies   []TweetView `json:"replies,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type FollowView struct {
	FollowerID  uuid.UUID   `json:"follower_id"`
	FollowingID uuid.UUID   `json:"following_id"`
	CreatedAt   time.Time   `json:"created_at"`
	Follower    UserSummary `json:"follower"`
	Following   UserSummary `json:"following"`
}

// Summary projects a user down to its scalar fields.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		UserName:  u.UserName,
		Email:     u.Email,
		ImageURL:  u.ImageURL,
		CreatedAt: u.CreatedAt,
	}
}

// NewLikeView projects a like; the liking user is included only when loaded.
func NewLikeView(l Like) LikeView {
	view := LikeView{
		UserID:    l.UserID,
		TweetID:   l.TweetID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if l.User.ID != uuid.Nil {
		summary := l.User.Summary()
		view.User = &summary
	}
	return view
}

// NewTweetView projects a tweet with its author and shallow likes.
// Replies are attached by the caller, bounded by its depth argument.
func NewTweetView(t Tweet) TweetView {
	likes := make([]LikeView, 0, len(t.Likes))
	for _, l := range t.Likes {
		likes = append(likes, NewLikeView(l))
	}
	return TweetView{
		ID:        t.ID,
		Content:   t.Content,
		UserID:    t.UserID,
		ParentID:  t.ParentID,
		Author:    t.Author.Summary(),
		Likes:     likes,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// NewFollowView projects a follow edge with both endpoints as summaries.
func NewFollowView(f Follow) FollowView {
	return FollowView{
		FollowerID:  f.FollowerID,
		FollowingID: f.FollowingID,
		CreatedAt:   f.CreatedAt,
		Follower:    f.Follower.Summary(),
		Following:   f.Following.Summary(),
	}
}
