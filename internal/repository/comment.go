package repository

import (
	"context"
	"time"

	"gullyconnect/internal/cache"
	"gullyconnect/internal/models"
	"gullyconnect/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	ListByPostIDs(ctx context.Context, postIDs []uint) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.ObserveQuery("insert", "comments", time.Now())

	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return translateError(err, "Post", comment.PostID)
	}
	cache.InvalidatePostComments(ctx, comment.PostID)
	cache.Invalidate(ctx, cache.PostKey(comment.PostID))
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	defer observability.ObserveQuery("select", "comments", time.Now())

	var comment models.Comment
	if err := readDB(r.db).WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, translateError(err, "Comment", id)
	}
	return &comment, nil
}

// ListByPost returns every comment on a post in creation order. Threading
// into parent buckets happens in memory on top of this flat list.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	defer observability.ObserveQuery("select", "comments", time.Now())

	var comments []*models.Comment
	err := readDB(r.db).WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListByPostIDs(ctx context.Context, postIDs []uint) ([]*models.Comment, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	defer observability.ObserveQuery("select", "comments", time.Now())

	var comments []*models.Comment
	err := readDB(r.db).WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}
