package service

import (
	"context"

	"gullyconnect/internal/identity"
	"gullyconnect/internal/models"
	"gullyconnect/internal/repository"
)

type EngagementService struct {
	engageRepo repository.EngagementRepository
	postRepo   repository.PostRepository
}

func NewEngagementService(engageRepo repository.EngagementRepository, postRepo repository.PostRepository) *EngagementService {
	return &EngagementService{
		engageRepo: engageRepo,
		postRepo:   postRepo,
	}
}

// LikePost records a like for the session's user. Repeats and concurrent
// duplicates leave exactly one engagement row; the call is a success either
// way and returns the post with fresh aggregate counts.
func (s *EngagementService) LikePost(ctx context.Context, session identity.Session, postID uint) (*models.Post, error) {
	if session.StorageID == "" {
		return nil, models.NewUnauthorizedError("A session is required to like a post")
	}

	// Surface a missing post before touching the engagement table
	if _, err := s.postRepo.GetByID(ctx, postID, ""); err != nil {
		return nil, err
	}

	if _, err := s.engageRepo.Like(ctx, session.StorageID, postID); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID, session.StorageID)
}
