package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gullyconnect/internal/identity"
	"gullyconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint, string) (*models.Post, error)
	listFn          func(context.Context, int, int, string) ([]*models.Post, error)
	listByAreaFn    func(context.Context, string, int, int, string) ([]*models.Post, error)
	listAreaScopeFn func(context.Context, string) ([]*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint, currentAuthorID string) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentAuthorID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentAuthorID string) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentAuthorID)
}
func (s *postRepoStub) ListByArea(ctx context.Context, area string, limit, offset int, currentAuthorID string) ([]*models.Post, error) {
	return s.listByAreaFn(ctx, area, limit, offset, currentAuthorID)
}
func (s *postRepoStub) ListAreaScope(ctx context.Context, area string) ([]*models.Post, error) {
	return s.listAreaScopeFn(ctx, area)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ uint, _ string) (*models.Post, error) { return &models.Post{}, nil },
		listFn:    func(_ context.Context, _, _ int, _ string) ([]*models.Post, error) { return nil, nil },
		listByAreaFn: func(_ context.Context, _ string, _, _ int, _ string) ([]*models.Post, error) {
			return nil, nil
		},
		listAreaScopeFn: func(_ context.Context, _ string) ([]*models.Post, error) { return nil, nil },
	}
}

// engageRepoStub is a stub for repository.EngagementRepository.
type engageRepoStub struct {
	likeFn         func(context.Context, string, uint) (bool, error)
	isLikedFn      func(context.Context, string, uint) (bool, error)
	likedPostIDsFn func(context.Context, string, []uint) ([]uint, error)
}

func (s *engageRepoStub) Like(ctx context.Context, authorID string, postID uint) (bool, error) {
	return s.likeFn(ctx, authorID, postID)
}
func (s *engageRepoStub) IsLiked(ctx context.Context, authorID string, postID uint) (bool, error) {
	return s.isLikedFn(ctx, authorID, postID)
}
func (s *engageRepoStub) LikedPostIDs(ctx context.Context, authorID string, postIDs []uint) ([]uint, error) {
	return s.likedPostIDsFn(ctx, authorID, postIDs)
}

func noopEngageRepo() *engageRepoStub {
	return &engageRepoStub{
		likeFn:         func(_ context.Context, _ string, _ uint) (bool, error) { return true, nil },
		isLikedFn:      func(_ context.Context, _ string, _ uint) (bool, error) { return false, nil },
		likedPostIDsFn: func(_ context.Context, _ string, _ []uint) ([]uint, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listByPostFn    func(context.Context, uint) ([]*models.Comment, error)
	listByPostIDsFn func(context.Context, []uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) ListByPostIDs(ctx context.Context, postIDs []uint) ([]*models.Comment, error) {
	return s.listByPostIDsFn(ctx, postIDs)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:        func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn:    func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		listByPostIDsFn: func(_ context.Context, _ []uint) ([]*models.Comment, error) { return nil, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func testSession() identity.Session {
	return identity.NewSession("Priya.Sharma@Example.com")
}

func sessionZero() identity.Session {
	return identity.Session{}
}

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires session", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopEngageRepo())

		_, err := svc.CreatePost(ctx, CreatePostInput{Title: "t", Body: "b", Area: "worli"})
		assertUnauthorizedError(t, err)
	})

	t.Run("requires title body and area", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopEngageRepo())

		_, err := svc.CreatePost(ctx, CreatePostInput{Session: testSession(), Body: "b", Area: "worli"})
		assertValidationError(t, err)

		_, err = svc.CreatePost(ctx, CreatePostInput{Session: testSession(), Title: "t", Area: "worli"})
		assertValidationError(t, err)

		_, err = svc.CreatePost(ctx, CreatePostInput{Session: testSession(), Title: "t", Body: "b"})
		assertValidationError(t, err)
	})

	t.Run("rejects oversized title", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopEngageRepo())

		_, err := svc.CreatePost(ctx, CreatePostInput{
			Session: testSession(),
			Title:   strings.Repeat("x", 301),
			Body:    "b",
			Area:    "worli",
		})
		assertValidationError(t, err)
	})

	t.Run("rejects category outside the area", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopEngageRepo())

		_, err := svc.CreatePost(ctx, CreatePostInput{
			Session:  testSession(),
			Title:    "t",
			Body:     "b",
			Area:     "worli",
			Category: "gc/mumbai/food",
		})
		assertValidationError(t, err)
	})

	t.Run("stamps author identity from the session", func(t *testing.T) {
		t.Parallel()

		var created *models.Post
		repo := noopPostRepo()
		repo.createFn = func(_ context.Context, p *models.Post) error {
			p.ID = 1
			created = p
			return nil
		}
		repo.getByIDFn = func(_ context.Context, id uint, _ string) (*models.Post, error) {
			return created, nil
		}
		svc := NewPostService(repo, noopEngageRepo())

		session := testSession()
		post, err := svc.CreatePost(ctx, CreatePostInput{
			Session:  session,
			Title:    "Water timings changed",
			Body:     "Supply is now 6-8am only.",
			Area:     "Worli",
			Category: "GC/Worli/Utilities",
		})
		require.NoError(t, err)
		assert.Equal(t, session.StorageID, post.AuthorID)
		assert.Equal(t, session.Alias, post.AuthorAlias)
		assert.Equal(t, "worli", post.Area)
		assert.Equal(t, "gc/worli/utilities", post.Category)
	})

	t.Run("drops blank image URLs and keeps order", func(t *testing.T) {
		t.Parallel()

		var created *models.Post
		repo := noopPostRepo()
		repo.createFn = func(_ context.Context, p *models.Post) error {
			created = p
			return nil
		}
		repo.getByIDFn = func(_ context.Context, _ uint, _ string) (*models.Post, error) {
			return created, nil
		}
		svc := NewPostService(repo, noopEngageRepo())

		_, err := svc.CreatePost(ctx, CreatePostInput{
			Session:   testSession(),
			Title:     "t",
			Body:      "b",
			Area:      "worli",
			ImageURLs: []string{"/media/a.jpg", "  ", "/media/b.jpg"},
		})
		require.NoError(t, err)
		require.Len(t, created.Images, 2)
		assert.Equal(t, "/media/a.jpg", created.Images[0].URL)
		assert.Equal(t, "/media/b.jpg", created.Images[1].URL)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	areaPosts := []*models.Post{
		{ID: 1, Title: "Pav bhaji near the station", Body: "Really good.", Area: "mumbai", Category: "gc/mumbai/food"},
		{ID: 2, Title: "Street lights out again", Body: "Third time this month.", Area: "mumbai", Category: "gc/mumbai/safety"},
	}

	t.Run("area facet narrows the fetch", func(t *testing.T) {
		t.Parallel()

		var gotArea string
		repo := noopPostRepo()
		repo.listByAreaFn = func(_ context.Context, area string, _, _ int, _ string) ([]*models.Post, error) {
			gotArea = area
			return areaPosts, nil
		}
		svc := NewPostService(repo, noopEngageRepo())

		posts, err := svc.ListPosts(ctx, ListPostsInput{Area: "mumbai", Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, "mumbai", gotArea)
		assert.Len(t, posts, 2)
	})

	t.Run("facets compose with AND", func(t *testing.T) {
		t.Parallel()

		repo := noopPostRepo()
		repo.listByAreaFn = func(_ context.Context, _ string, _, _ int, _ string) ([]*models.Post, error) {
			return areaPosts, nil
		}
		svc := NewPostService(repo, noopEngageRepo())

		posts, err := svc.ListPosts(ctx, ListPostsInput{Area: "mumbai", Topic: "food", Limit: 20})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, uint(1), posts[0].ID)
	})

	t.Run("query matches title or body case-insensitively", func(t *testing.T) {
		t.Parallel()

		repo := noopPostRepo()
		repo.listFn = func(_ context.Context, _, _ int, _ string) ([]*models.Post, error) {
			return areaPosts, nil
		}
		svc := NewPostService(repo, noopEngageRepo())

		posts, err := svc.ListPosts(ctx, ListPostsInput{Query: "PAV BHAJI", Limit: 50})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, uint(1), posts[0].ID)
	})

	t.Run("front page re-marks liked for the session", func(t *testing.T) {
		t.Parallel()

		repo := noopPostRepo()
		repo.listFn = func(_ context.Context, _, _ int, _ string) ([]*models.Post, error) {
			return []*models.Post{{ID: 1}, {ID: 2}}, nil
		}
		engage := noopEngageRepo()
		engage.likedPostIDsFn = func(_ context.Context, _ string, _ []uint) ([]uint, error) {
			return []uint{2}, nil
		}
		svc := NewPostService(repo, engage)

		posts, err := svc.ListPosts(ctx, ListPostsInput{Limit: 20, CurrentAuthorID: "priy-asha-rma1-2345"})
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.False(t, posts[0].Liked)
		assert.True(t, posts[1].Liked)
	})
}
