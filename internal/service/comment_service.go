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

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	Session         identity.Session
	PostID          uint
	Body            string
	ParentCommentID *uint
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Session.StorageID == "" {
		return nil, models.NewUnauthorizedError("A session is required to comment")
	}

	const maxBodyLen = 10000

	if strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Comment body is required")
	}
	if len(in.Body) > maxBodyLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	level := "root"
	if in.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentCommentID)
		if err != nil {
			return nil, err
		}
		// A reply must target a comment on the same post
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
		level = "reply"
	}

	comment := &models.Comment{
		PostID:          in.PostID,
		Body:            in.Body,
		AuthorID:        in.Session.StorageID,
		AuthorAlias:     in.Session.Alias,
		ParentCommentID: in.ParentCommentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.WithLabelValues(level).Inc()

	return comment, nil
}

// GetThread returns the post's comments bucketed by parent. Top-level
// comments sit under the root key; replies under their parent's ID.
func (s *CommentService) GetThread(ctx context.Context, postID uint) (map[string][]*models.Comment, error) {
	// Confirm the post exists so a missing post is a 404, not an empty thread
	if _, err := s.postRepo.GetByID(ctx, postID, ""); err != nil {
		return nil, err
	}

	var comments []*models.Comment
	err := cache.Aside(ctx, cache.PostCommentsKey(postID), &comments, cache.PostCommentsTTL, func() error {
		var fetchErr error
		comments, fetchErr = s.commentRepo.ListByPost(ctx, postID)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	return forum.ThreadComments(comments), nil
}
