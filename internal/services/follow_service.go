package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mblog-app/backend/internal/apperr"
	"github.com/mblog-app/backend/internal/models"
	"github.com/mblog-app/backend/internal/repositories"
)

// FollowService enforces the social-graph invariants: no self-follow, no
// duplicate edge, both endpoints must exist.
type FollowService struct {
	follows repositories.FollowRepository
	users   repositories.UserRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(follows repositories.FollowRepository, users repositories.UserRepository) *FollowService {
	return &FollowService{follows: follows, users: users}
}

// Follow creates a follow edge from follower to following.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uuid.UUID) (*models.FollowView, error) {
	if followerID == uuid.Nil || followingID == uuid.Nil {
		return nil, apperr.New(apperr.InvalidInput, "follower and following ids are required")
	}
	// Self-reference is rejected before the existence checks on write paths.
	if followerID == followingID {
		return nil, apperr.New(apperr.Conflict, "a user cannot follow themselves")
	}
	if err := s.requireUsers(ctx, followerID, followingID); err != nil {
		return nil, err
	}

	exists, err := s.follows.Exists(ctx, followerID, followingID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to check follow")
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "already following this user")
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.follows.Create(ctx, follow); err != nil {
		if isDuplicate(err) {
			return nil, apperr.New(apperr.Conflict, "already following this user")
		}
		return nil, apperr.Wrap(err, "failed to create follow")
	}

	return s.Get(ctx, followerID, followingID)
}

// Get returns the follow edge with both endpoints projected as summaries.
func (s *FollowService) Get(ctx context.Context, followerID, followingID uuid.UUID) (*models.FollowView, error) {
	if followerID == uuid.Nil || followingID == uuid.Nil {
		return nil, apperr.New(apperr.InvalidInput, "follower and following ids are required")
	}
	if err := s.requireUsers(ctx, followerID, followingID); err != nil {
		return nil, err
	}

	follow, err := s.follows.Get(ctx, followerID, followingID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "follow not found")
		}
		return nil, apperr.Wrap(err, "failed to load follow")
	}

	view := models.NewFollowView(*follow)
	return &view, nil
}

// Unfollow removes a follow edge.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if followerID == uuid.Nil || followingID == uuid.Nil {
		return apperr.New(apperr.InvalidInput, "follower and following ids are required")
	}
	if followerID == followingID {
		return apperr.New(apperr.Conflict, "a user cannot unfollow themselves")
	}
	if err := s.requireUsers(ctx, followerID, followingID); err != nil {
		return err
	}

	if err := s.follows.Delete(ctx, followerID, followingID); err != nil {
		if isNotFound(err) {
			return apperr.New(apperr.NotFound, "follow not found")
		}
		return apperr.Wrap(err, "failed to delete follow")
	}
	return nil
}

func (s *FollowService) requireUsers(ctx context.Context, followerID, followingID uuid.UUID) error {
	exists, err := s.users.Exists(ctx, followerID)
	if err != nil {
		return apperr.Wrap(err, "failed to check follower")
	}
	if !exists {
		return apperr.New(apperr.NotFound, "follower not found")
	}

	exists, err = s.users.Exists(ctx, followingID)
	if err != nil {
		return apperr.Wrap(err, "failed to check followed user")
	}
	if !exists {
		return apperr.New(apperr.NotFound, "user to follow not found")
	}
	return nil
}
