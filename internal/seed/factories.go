// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gullyconnect/internal/identity"
	"gullyconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rnd  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, opts: opts, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewResident generates a session for a synthetic forum member. The external
// ID is a fake email; the storage ID and alias derive from it the same way
// they do for real sign-ins, so seeded rows look exactly like production rows.
func (f *Factory) NewResident() identity.Session {
	external := fmt.Sprintf("%s+%s@example.com", gofakeit.Username(), uuid.NewString()[:8])
	return identity.NewSession(external)
}

// BuildPost constructs a post for the given author in the given area without
// persisting it. Optional override functions may modify it before saving.
func (f *Factory) BuildPost(author identity.Session, area, topic string, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:       gofakeit.Sentence(f.rnd.Intn(6) + 3),
		Body:        gofakeit.Paragraph(1, f.rnd.Intn(4)+1, 8, "\n"),
		AuthorID:    author.StorageID,
		AuthorAlias: author.Alias,
		Area:        area,
		Category:    fmt.Sprintf("%s/%s/%s", models.CategoryRoot, area, topic),
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	post.CreatedAt = time.Now().
		Add(-time.Duration(f.rnd.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(f.rnd.Intn(24*60)) * time.Minute)

	if f.rnd.Float32() < 0.3 {
		n := f.rnd.Intn(3) + 1
		for i := 0; i < n; i++ {
			post.Images = append(post.Images, models.PostImage{
				Position: i,
				URL:      fmt.Sprintf("https://picsum.photos/seed/%s/800/800", uuid.NewString()),
			})
		}
	}

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment persists a comment by the given author. parentID may be nil
// for a root-level comment.
func (f *Factory) CreateComment(author identity.Session, postID uint, parentID *uint) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:          postID,
		Body:            gofakeit.Sentence(f.rnd.Intn(12) + 2),
		AuthorID:        author.StorageID,
		AuthorAlias:     author.Alias,
		ParentCommentID: parentID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike records a like, silently skipping duplicates the way the live
// like path does.
func (f *Factory) CreateLike(author identity.Session, postID uint) error {
	like := models.Like{PostID: postID, UserID: author.StorageID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

// pick returns a random element of the slice.
func (f *Factory) pick(values []string) string {
	return values[f.rnd.Intn(len(values))]
}

func logProgress(step string, n int) {
	if n > 0 && n%100 == 0 {
		log.Printf("Created %d %s...", n, step)
	}
}
