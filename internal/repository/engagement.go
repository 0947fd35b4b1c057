package repository

import (
	"context"
	"time"

	"gullyconnect/internal/cache"
	"gullyconnect/internal/models"
	"gullyconnect/internal/observability"

	"gorm.io/gorm"
)

// EngagementRepository records likes. A user holds at most one like per post;
// repeat attempts are absorbed at the database rather than checked first.
type EngagementRepository interface {
	Like(ctx context.Context, authorID string, postID uint) (bool, error)
	IsLiked(ctx context.Context, authorID string, postID uint) (bool, error)
	LikedPostIDs(ctx context.Context, authorID string, postIDs []uint) ([]uint, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new EngagementRepository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// Like inserts the engagement row atomically. ON CONFLICT DO NOTHING makes
// concurrent duplicates a no-op instead of an error, so the insert either
// lands exactly once or not at all. Returns true when a new row was created.
func (r *engagementRepository) Like(ctx context.Context, authorID string, postID uint) (bool, error) {
	defer observability.ObserveQuery("insert", "post_likes", time.Now())

	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO post_likes (post_id, user_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (post_id, user_id) DO NOTHING`,
		postID, authorID,
	)
	if result.Error != nil {
		return false, translateError(result.Error, "Post", postID)
	}

	created := result.RowsAffected > 0
	if created {
		observability.LikeOutcomes.WithLabelValues("created").Inc()
		cache.Invalidate(ctx, cache.PostKey(postID))
	} else {
		observability.LikeOutcomes.WithLabelValues("duplicate").Inc()
	}
	return created, nil
}

func (r *engagementRepository) IsLiked(ctx context.Context, authorID string, postID uint) (bool, error) {
	defer observability.ObserveQuery("select", "post_likes", time.Now())

	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", authorID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *engagementRepository) LikedPostIDs(ctx context.Context, authorID string, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	defer observability.ObserveQuery("select", "post_likes", time.Now())

	var likedPostIDs []uint
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", authorID, postIDs).
		Pluck("post_id", &likedPostIDs).Error
	return likedPostIDs, err
}
