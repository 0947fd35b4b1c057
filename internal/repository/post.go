package repository

import (
	"context"
	"time"

	"gullyconnect/internal/cache"
	"gullyconnect/internal/models"
	"gullyconnect/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentAuthorID string) (*models.Post, error)
	List(ctx context.Context, limit, offset int, currentAuthorID string) ([]*models.Post, error)
	ListByArea(ctx context.Context, area string, limit, offset int, currentAuthorID string) ([]*models.Post, error)
	ListAreaScope(ctx context.Context, area string) ([]*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.ObserveQuery("insert", "posts", time.Now())
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateArea(ctx, post.Area)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentAuthorID string) (*models.Post, error) {
	defer observability.ObserveQuery("select", "posts", time.Now())

	var post models.Post
	var err error
	if currentAuthorID == "" {
		// Anonymous reads share one cache entry; personalized reads bypass
		// the cache so the liked flag is never served stale.
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
			return r.applyPostDetails(readDB(r.db).WithContext(ctx), "").
				Preload("Images").
				First(&post, id).Error
		})
	} else {
		err = r.applyPostDetails(readDB(r.db).WithContext(ctx), currentAuthorID).
			Preload("Images").
			First(&post, id).Error
	}
	if err != nil {
		return nil, translateError(err, "Post", id)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, currentAuthorID string) ([]*models.Post, error) {
	defer observability.ObserveQuery("select", "posts", time.Now())

	var posts []*models.Post
	err := r.applyPostDetails(readDB(r.db).WithContext(ctx), currentAuthorID).
		Preload("Images").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByArea(ctx context.Context, area string, limit, offset int, currentAuthorID string) ([]*models.Post, error) {
	defer observability.ObserveQuery("select", "posts", time.Now())

	var posts []*models.Post
	err := r.scopeArea(r.applyPostDetails(readDB(r.db).WithContext(ctx), currentAuthorID), area).
		Preload("Images").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// ListAreaScope fetches every post belonging to an area without pagination or
// personalization. Contributor rankings need the whole scope to count
// activity.
func (r *postRepository) ListAreaScope(ctx context.Context, area string) ([]*models.Post, error) {
	defer observability.ObserveQuery("select", "posts", time.Now())

	var posts []*models.Post
	err := r.scopeArea(readDB(r.db).WithContext(ctx).Model(&models.Post{}), area).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}

// scopeArea matches a post when its area field equals the requested area or
// its category sits under the area's branch of the category tree. Mirrors the
// in-memory filter semantics so SQL prefilters and in-memory refinement agree.
func (r *postRepository) scopeArea(db *gorm.DB, area string) *gorm.DB {
	return db.Where(
		"LOWER(area) = LOWER(?) OR LOWER(category) LIKE LOWER(?)",
		area, models.CategoryRoot+"/"+area+"/%",
	)
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
// Counts are always aggregated at read time; nothing increments a stored counter.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentAuthorID string) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) as likes_count"

	if currentAuthorID != "" {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM post_likes WHERE post_likes.post_id = posts.id AND post_likes.user_id = ?) as liked", currentAuthorID)
	}

	return db.Select(selectQuery + ", false as liked")
}
