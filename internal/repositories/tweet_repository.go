package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mblog-app/backend/internal/models"
)

// TweetRepository defines the interface for tweet data operations.
// Replies are never embedded: children are looked up through the parent_id
// index with ListReplies, one level per call.
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tweet, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]models.Tweet, error)
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]models.Tweet, error)
}

// PostgresTweetRepository implements TweetRepository for PostgreSQL
type PostgresTweetRepository struct {
	db *gorm.DB
}

// NewPostgresTweetRepository creates a new PostgresTweetRepository
func NewPostgresTweetRepository(db *gorm.DB) *PostgresTweetRepository {
	return &PostgresTweetRepository{db: db}
}

func (r *PostgresTweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

func (r *PostgresTweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tweet, error) {
	var tweet models.Tweet
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Preload("Likes.User").
		First(&tweet, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *PostgresTweetRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Tweet{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByAuthorIDs returns every tweet (top-level and replies) authored by the
// given set, newest first. This is the feed query.
func (r *PostgresTweetRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]models.Tweet, error) {
	var tweets []models.Tweet
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Preload("Likes.User").
		Where("user_id IN ?", authorIDs).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}

// ListReplies returns the direct children of a tweet, oldest first.
func (r *PostgresTweetRepository) ListReplies(ctx context.Context, parentID uuid.UUID) ([]models.Tweet, error) {
	var tweets []models.Tweet
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Preload("Likes.User").
		Where("parent_id = ?", parentID).
		Order("created_at asc").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}
