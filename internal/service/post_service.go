// Package service holds the application's business logic, sitting between
// HTTP handlers and repositories.
package service

import (
	"context"
	"strings"

	"gullyconnect/internal/cache"
	"gullyconnect/internal/forum"
	"gullyconnect/internal/identity"
	"gullyconnect/internal/models"
	"gullyconnect/internal/observability"
	"gullyconnect/internal/repository"
)

type PostService struct {
	postRepo   repository.PostRepository
	engageRepo repository.EngagementRepository
}

type CreatePostInput struct {
	Session   identity.Session
	Title     string
	Body      string
	Area      string
	Category  string
	ImageURLs []string
}

type ListPostsInput struct {
	Query           string
	Area            string
	Topic           string
	Limit           int
	Offset          int
	CurrentAuthorID string
	// SkipCache bypasses the front-page cache. Driven by the
	// disable_post_cache kill switch.
	SkipCache bool
}

func NewPostService(postRepo repository.PostRepository, engageRepo repository.EngagementRepository) *PostService {
	return &PostService{
		postRepo:   postRepo,
		engageRepo: engageRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Session.StorageID == "" {
		return nil, models.NewUnauthorizedError("A session is required to post")
	}

	const maxTitleLen = 300
	const maxBodyLen = 50000

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Body) > maxBodyLen {
		return nil, models.NewValidationError("Body too long (max 50000 characters)")
	}

	area := strings.ToLower(strings.TrimSpace(in.Area))
	if area == "" {
		return nil, models.NewValidationError("Area is required")
	}
	category := strings.ToLower(strings.TrimSpace(in.Category))
	if category != "" && !models.ValidCategory(area, category) {
		return nil, models.NewValidationError("Category must sit under the post's area")
	}

	images := make([]models.PostImage, 0, len(in.ImageURLs))
	for i, raw := range in.ImageURLs {
		u := strings.TrimSpace(raw)
		if u == "" {
			continue
		}
		images = append(images, models.PostImage{Position: i, URL: u})
	}

	post := &models.Post{
		Title:       title,
		Body:        in.Body,
		AuthorID:    in.Session.StorageID,
		AuthorAlias: in.Session.Alias,
		Area:        area,
		Category:    category,
		Images:      images,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.WithLabelValues(area).Inc()

	return s.postRepo.GetByID(ctx, post.ID, in.Session.StorageID)
}

// ListPosts fetches candidate posts and refines them through the facet
// filter. An area facet narrows the fetch itself; query and topic are
// matched in memory on the candidate set.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	filter := forum.PostFilter{Query: in.Query, Area: in.Area, Topic: in.Topic}

	var posts []*models.Post
	var err error

	switch {
	case filter.IsZero() && in.Offset == 0 && in.Limit <= 20 && !in.SkipCache:
		// The front page is the hottest read; serve it cache-aside without
		// personalization, then re-mark liked for the current session.
		err = cache.Aside(ctx, cache.PostsListKey, &posts, cache.ListTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, in.Limit, in.Offset, "")
			return fetchErr
		})
		if err == nil && in.CurrentAuthorID != "" && len(posts) > 0 {
			s.markLiked(ctx, posts, in.CurrentAuthorID)
		}
	case in.Area != "":
		posts, err = s.postRepo.ListByArea(ctx, in.Area, in.Limit, in.Offset, in.CurrentAuthorID)
	default:
		posts, err = s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentAuthorID)
	}
	if err != nil {
		return nil, err
	}

	return filter.Apply(posts), nil
}

func (s *PostService) markLiked(ctx context.Context, posts []*models.Post, authorID string) {
	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}
	likedIDs, err := s.engageRepo.LikedPostIDs(ctx, authorID, postIDs)
	if err != nil {
		return
	}
	likedMap := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedMap[id] = true
	}
	for _, p := range posts {
		p.Liked = likedMap[p.ID]
	}
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentAuthorID string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentAuthorID)
}
