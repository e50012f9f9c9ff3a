package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mblog-app/backend/internal/models"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Get(ctx context.Context, tweetID, userID uuid.UUID) (*models.Like, error)
	Exists(ctx context.Context, tweetID, userID uuid.UUID) (bool, error)
	Delete(ctx context.Context, tweetID, userID uuid.UUID) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) Create(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *PostgresLikeRepository) Get(ctx context.Context, tweetID, userID uuid.UUID) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("tweet_id = ? AND user_id = ?", tweetID, userID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *PostgresLikeRepository) Exists(ctx context.Context, tweetID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Like{}).Where("tweet_id = ? AND user_id = ?", tweetID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresLikeRepository) Delete(ctx context.Context, tweetID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("tweet_id = ? AND user_id = ?", tweetID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
