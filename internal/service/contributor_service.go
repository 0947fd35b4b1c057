package service

import (
	"context"
	"strings"

	"gullyconnect/internal/cache"
	"gullyconnect/internal/forum"
	"gullyconnect/internal/models"
	"gullyconnect/internal/repository"
)

const (
	defaultContributorCount = 3
	maxContributorCount     = 10
)

type ContributorService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewContributorService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *ContributorService {
	return &ContributorService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// TopContributors ranks an area's authors by activity. Every post and every
// comment in the area's scope counts one point; ties order by author ID so
// equal scores always list the same way.
func (s *ContributorService) TopContributors(ctx context.Context, area string, n int) ([]forum.ContributorStat, error) {
	area = strings.ToLower(strings.TrimSpace(area))
	if area == "" {
		return nil, models.NewValidationError("Area is required")
	}
	if n <= 0 {
		n = defaultContributorCount
	}
	if n > maxContributorCount {
		n = maxContributorCount
	}

	var stats []forum.ContributorStat
	err := cache.Aside(ctx, cache.ContributorsKey(area, n), &stats, cache.ContributorsTTL, func() error {
		posts, err := s.postRepo.ListAreaScope(ctx, area)
		if err != nil {
			return err
		}

		postIDs := make([]uint, len(posts))
		for i, p := range posts {
			postIDs[i] = p.ID
		}
		comments, err := s.commentRepo.ListByPostIDs(ctx, postIDs)
		if err != nil {
			return err
		}

		stats = forum.TopContributors(posts, comments, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
