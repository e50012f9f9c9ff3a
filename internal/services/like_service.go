package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mblog-app/backend/internal/apperr"
	"github.com/mblog-app/backend/internal/models"
	"github.com/mblog-app/backend/internal/repositories"
)

// LikeService enforces the like invariants: both entities must exist, a user
// cannot like their own tweet, and at most one like per (user, tweet) pair.
type LikeService struct {
	likes  repositories.LikeRepository
	tweets repositories.TweetRepository
	users  repositories.UserRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(likes repositories.LikeRepository, tweets repositories.TweetRepository, users repositories.UserRepository) *LikeService {
	return &LikeService{likes: likes, tweets: tweets, users: users}
}

// Add likes a tweet on behalf of a user.
func (s *LikeService) Add(ctx context.Context, tweetID, userID uuid.UUID) (*models.LikeView, error) {
	tweet, err := s.requirePair(ctx, tweetID, userID)
	if err != nil {
		return nil, err
	}

	if tweet.UserID == userID {
		return nil, apperr.New(apperr.Conflict, "a user cannot like their own tweet")
	}

	exists, err := s.likes.Exists(ctx, tweetID, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to check like")
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "tweet already liked")
	}

	like := &models.Like{UserID: userID, TweetID: tweetID}
	if err := s.likes.Create(ctx, like); err != nil {
		if isDuplicate(err) {
			return nil, apperr.New(apperr.Conflict, "tweet already liked")
		}
		return nil, apperr.Wrap(err, "failed to create like")
	}

	stored, err := s.likes.Get(ctx, tweetID, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load like")
	}
	view := models.NewLikeView(*stored)
	return &view, nil
}

// Get returns the like for the pair, or nil with no error when the user has
// not liked the tweet. The absent like is an answer, not a failure.
func (s *LikeService) Get(ctx context.Context, tweetID, userID uuid.UUID) (*models.LikeView, error) {
	if _, err := s.requirePair(ctx, tweetID, userID); err != nil {
		return nil, err
	}

	like, err := s.likes.Get(ctx, tweetID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, apperr.Wrap(err, "failed to load like")
	}
	view := models.NewLikeView(*like)
	return &view, nil
}

// Remove deletes the like for the pair.
func (s *LikeService) Remove(ctx context.Context, tweetID, userID uuid.UUID) error {
	if _, err := s.requirePair(ctx, tweetID, userID); err != nil {
		return err
	}

	if err := s.likes.Delete(ctx, tweetID, userID); err != nil {
		if isNotFound(err) {
			return apperr.New(apperr.NotFound, "like not found")
		}
		return apperr.Wrap(err, "failed to delete like")
	}
	return nil
}

// requirePair validates both ids and resolves the tweet, whose author id the
// own-tweet check needs.
func (s *LikeService) requirePair(ctx context.Context, tweetID, userID uuid.UUID) (*models.Tweet, error) {
	if tweetID == uuid.Nil || userID == uuid.Nil {
		return nil, apperr.New(apperr.InvalidInput, "tweet and user ids are required")
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to check user")
	}
	if !exists {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}

	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "tweet not found")
		}
		return nil, apperr.Wrap(err, "failed to load tweet")
	}
	return tweet, nil
}
