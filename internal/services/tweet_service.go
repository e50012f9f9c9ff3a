package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mblog-app/backend/internal/apperr"
	"github.com/mblog-app/backend/internal/models"
	"github.com/mblog-app/backend/internal/repositories"
)

const (
	// MaxContentLength is the tweet content limit, counted in runes.
	MaxContentLength = 280

	// feedReplyDepth bounds reply materialization in the feed: replies and
	// replies-of-replies are included, deeper levels are omitted.
	feedReplyDepth = 2

	// detailReplyDepth is the single level of direct replies exposed by
	// GetByID. Deeper levels are reached by fetching the child tweet.
	detailReplyDepth = 1

	defaultFeedLimit = 10
	maxFeedLimit     = 50
)

// TweetService creates tweets and replies and materializes the feed by
// combining the follow graph with the content store.
type TweetService struct {
	tweets  repositories.TweetRepository
	users   repositories.UserRepository
	follows repositories.FollowRepository
}

// NewTweetService creates a new TweetService
func NewTweetService(tweets repositories.TweetRepository, users repositories.UserRepository, follows repositories.FollowRepository) *TweetService {
	return &TweetService{tweets: tweets, users: users, follows: follows}
}

// Create persists a top-level tweet.
func (s *TweetService) Create(ctx context.Context, content string, authorID uuid.UUID) (*models.TweetView, error) {
	content, err := s.validateContent(content, authorID)
	if err != nil {
		return nil, err
	}

	author, err := s.requireAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	tweet := &models.Tweet{Content: content, UserID: authorID}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, apperr.Wrap(err, "failed to create tweet")
	}

	tweet.Author = *author
	view := models.NewTweetView(*tweet)
	return &view, nil
}

// CreateReply persists a tweet whose parent is an existing tweet.
func (s *TweetService) CreateReply(ctx context.Context, content string, parentID, authorID uuid.UUID) (*models.TweetView, error) {
	content, err := s.validateContent(content, authorID)
	if err != nil {
		return nil, err
	}
	if parentID == uuid.Nil {
		return nil, apperr.New(apperr.InvalidInput, "parent tweet id is required")
	}

	exists, err := s.tweets.Exists(ctx, parentID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to check parent tweet")
	}
	if !exists {
		return nil, apperr.New(apperr.NotFound, "parent tweet not found")
	}

	author, err := s.requireAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	tweet := &models.Tweet{Content: content, UserID: authorID, ParentID: &parentID}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, apperr.Wrap(err, "failed to create reply")
	}

	tweet.Author = *author
	view := models.NewTweetView(*tweet)
	return &view, nil
}

// GetByID returns a tweet with its author, shallow likes, and exactly one
// level of direct replies.
func (s *TweetService) GetByID(ctx context.Context, id uuid.UUID) (*models.TweetView, error) {
	if id == uuid.Nil {
		return nil, apperr.New(apperr.InvalidInput, "tweet id is required")
	}

	tweet, err := s.tweets.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "tweet not found")
		}
		return nil, apperr.Wrap(err, "failed to load tweet")
	}

	return s.project(ctx, *tweet, detailReplyDepth)
}

// Feed returns the reverse-chronological tweets authored by the user and
// everyone they follow, with reply trees materialized to depth 2.
func (s *TweetService) Feed(ctx context.Context, userID uuid.UUID, limit, page int) ([]models.TweetView, error) {
	if userID == uuid.Nil {
		return nil, apperr.New(apperr.InvalidInput, "user id is required")
	}
	if limit < 1 || limit > maxFeedLimit {
		limit = defaultFeedLimit
	}
	if page < 1 {
		page = 1
	}

	followingIDs, err := s.follows.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load followed users")
	}
	authorIDs := append(followingIDs, userID)

	tweets, err := s.tweets.ListByAuthorIDs(ctx, authorIDs, limit, (page-1)*limit)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load feed")
	}

	views := make([]models.TweetView, 0, len(tweets))
	for _, tweet := range tweets {
		view, err := s.project(ctx, tweet, feedReplyDepth)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// project builds the view for a tweet, recursing into replies while depth is
// positive. At depth 0 the replies collection is omitted entirely, which is
// what bounds the response on long reply chains.
func (s *TweetService) project(ctx context.Context, tweet models.Tweet, depth int) (*models.TweetView, error) {
	view := models.NewTweetView(tweet)
	if depth <= 0 {
		return &view, nil
	}

	replies, err := s.tweets.ListReplies(ctx, tweet.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load replies")
	}

	views := make([]models.TweetView, 0, len(replies))
	for _, reply := range replies {
		child, err := s.project(ctx, reply, depth-1)
		if err != nil {
			return nil, err
		}
		views = append(views, *child)
	}
	view.Replies = views
	return &view, nil
}

func (s *TweetService) validateContent(content string, authorID uuid.UUID) (string, error) {
	if authorID == uuid.Nil {
		return "", apperr.New(apperr.InvalidInput, "author id is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return "", apperr.New(apperr.InvalidInput, "tweet content is required")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return "", apperr.New(apperr.InvalidInput, "tweet content must be at most 280 characters")
	}
	return content, nil
}

func (s *TweetService) requireAuthor(ctx context.Context, authorID uuid.UUID) (*models.User, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "author not found")
		}
		return nil, apperr.Wrap(err, "failed to load author")
	}
	return author, nil
}
