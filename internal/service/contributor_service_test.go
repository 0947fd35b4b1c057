package service

import (
	"context"
	"testing"

	"gullyconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributorService_TopContributors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires area", func(t *testing.T) {
		t.Parallel()
		svc := NewContributorService(noopPostRepo(), noopCommentRepo())

		_, err := svc.TopContributors(ctx, "  ", 3)
		assertValidationError(t, err)
	})

	t.Run("ranks by combined post and comment counts", func(t *testing.T) {
		t.Parallel()

		posts := noopPostRepo()
		posts.listAreaScopeFn = func(_ context.Context, area string) ([]*models.Post, error) {
			assert.Equal(t, "worli", area)
			return []*models.Post{
				{ID: 1, AuthorID: "u1", AuthorAlias: "CalmLangur07"},
				{ID: 2, AuthorID: "u1", AuthorAlias: "CalmLangur07"},
				{ID: 3, AuthorID: "u1", AuthorAlias: "CalmLangur07"},
				{ID: 4, AuthorID: "u2", AuthorAlias: "SteadyHornbill42"},
			}, nil
		}
		comments := noopCommentRepo()
		comments.listByPostIDsFn = func(_ context.Context, postIDs []uint) ([]*models.Comment, error) {
			assert.ElementsMatch(t, []uint{1, 2, 3, 4}, postIDs)
			return []*models.Comment{
				{ID: 1, PostID: 1, AuthorID: "u1", AuthorAlias: "CalmLangur07"},
				{ID: 2, PostID: 1, AuthorID: "u1", AuthorAlias: "CalmLangur07"},
				{ID: 3, PostID: 4, AuthorID: "u2", AuthorAlias: "SteadyHornbill42"},
			}, nil
		}
		svc := NewContributorService(posts, comments)

		stats, err := svc.TopContributors(ctx, "Worli", 3)
		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, "u1", stats[0].AuthorID)
		assert.Equal(t, 5, stats[0].ActivityScore)
		assert.Equal(t, "u2", stats[1].AuthorID)
		assert.Equal(t, 2, stats[1].ActivityScore)
	})

	t.Run("defaults and caps the requested size", func(t *testing.T) {
		t.Parallel()

		posts := noopPostRepo()
		posts.listAreaScopeFn = func(_ context.Context, _ string) ([]*models.Post, error) {
			var out []*models.Post
			for i := 0; i < 20; i++ {
				out = append(out, &models.Post{ID: uint(i + 1), AuthorID: string(rune('a'+i)) + "-author"})
			}
			return out, nil
		}
		svc := NewContributorService(posts, noopCommentRepo())

		stats, err := svc.TopContributors(ctx, "worli", 0)
		require.NoError(t, err)
		assert.Len(t, stats, defaultContributorCount)

		stats, err = svc.TopContributors(ctx, "worli", 500)
		require.NoError(t, err)
		assert.Len(t, stats, maxContributorCount)
	})
}
