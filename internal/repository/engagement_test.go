package repository

import (
	"context"
	"sync"
	"testing"

	"gullyconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteDB opens an in-memory database so the ON CONFLICT insert path
// runs against a real SQL engine instead of a mock.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.PostImage{}, &models.Comment{}, &models.Like{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM post_likes")
		db.Exec("DELETE FROM comments")
		db.Exec("DELETE FROM post_images")
		db.Exec("DELETE FROM posts")
	})
	return db
}

func TestEngagementRepository_Like_Idempotent(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "Gym opened near the station", Body: "Finally.", AuthorID: "priy-asha-rma1-2345", Area: "worli"}
	require.NoError(t, db.Create(post).Error)

	created, err := repo.Like(ctx, "amit-kuma-r000-0000", post.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// Repeats are absorbed, not errors
	for i := 0; i < 5; i++ {
		created, err = repo.Like(ctx, "amit-kuma-r000-0000", post.ID)
		require.NoError(t, err)
		assert.False(t, created)
	}

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEngagementRepository_Like_ConcurrentBurst(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "Power cut schedule", Body: "Posted on the notice board.", AuthorID: "priy-asha-rma1-2345", Area: "worli"}
	require.NoError(t, db.Create(post).Error)

	const attempts = 10
	results := make(chan bool, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.Like(ctx, "amit-kuma-r000-0000", post.ID)
			if err == nil {
				results <- created
			}
		}()
	}
	wg.Wait()
	close(results)

	createdCount := 0
	for created := range results {
		if created {
			createdCount++
		}
	}
	assert.Equal(t, 1, createdCount)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEngagementRepository_Like_DistinctUsersAndPosts(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewEngagementRepository(db)
	ctx := context.Background()

	first := &models.Post{Title: "A", Body: "a", AuthorID: "priy-asha-rma1-2345", Area: "worli"}
	second := &models.Post{Title: "B", Body: "b", AuthorID: "priy-asha-rma1-2345", Area: "worli"}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	for _, uid := range []string{"aaaa-aaaa-aaaa-0000", "bbbb-bbbb-bbbb-0000"} {
		created, err := repo.Like(ctx, uid, first.ID)
		require.NoError(t, err)
		assert.True(t, created)
	}
	created, err := repo.Like(ctx, "aaaa-aaaa-aaaa-0000", second.ID)
	require.NoError(t, err)
	assert.True(t, created)

	liked, err := repo.IsLiked(ctx, "aaaa-aaaa-aaaa-0000", first.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.IsLiked(ctx, "cccc-cccc-cccc-0000", first.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	ids, err := repo.LikedPostIDs(ctx, "aaaa-aaaa-aaaa-0000", []uint{first.ID, second.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, ids)
}
