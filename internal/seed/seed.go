package seed

import (
	"fmt"
	"log"

	"gullyconnect/internal/identity"
	"gullyconnect/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumResidents int
	NumPosts     int
	ShouldClean  bool
	// MaxDays bounds how far back seeded post timestamps spread.
	MaxDays int
}

var (
	// areas are the neighbourhoods demo data is spread across.
	areas = []string{
		"bandra", "andheri", "worli", "dadar", "powai",
		"malad", "juhu", "colaba", "thane", "chembur",
	}

	// topics become the leaf of each post's category path.
	topics = []string{
		"food", "utilities", "safety", "events", "housing",
		"traffic", "recommendations", "lost-and-found", "civic",
	}
)

// Seed populates the database with demo residents, posts, comments and likes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d residents and %d posts...", opts.NumResidents, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	residents := make([]identity.Session, 0, opts.NumResidents)
	for i := 0; i < opts.NumResidents; i++ {
		residents = append(residents, f.NewResident())
	}
	log.Printf("Generated %d resident identities", len(residents))

	posts, err := createPosts(f, residents, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := createEngagement(f, residents, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE post_likes, comments, post_images, posts RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createPosts(f *Factory, residents []identity.Session, count int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := residents[f.rnd.Intn(len(residents))]
		posts = append(posts, f.BuildPost(author, f.pick(areas), f.pick(topics)))
	}

	// chunked batch insert keeps the statement size bounded
	for i := 0; i < len(posts); i += 100 {
		end := i + 100
		if end > len(posts) {
			end = len(posts)
		}
		if err := f.CreatePostsBatch(posts[i:end]); err != nil {
			return nil, err
		}
		logProgress("posts", end)
	}
	return posts, nil
}

// createEngagement gives each post a plausible mix of comments and likes,
// with some comments nested one level under an earlier root comment.
func createEngagement(f *Factory, residents []identity.Session, posts []*models.Post) error {
	commentCount := 0
	for _, post := range posts {
		numComments := f.rnd.Intn(6)
		var roots []uint
		for i := 0; i < numComments; i++ {
			author := residents[f.rnd.Intn(len(residents))]
			var parentID *uint
			if len(roots) > 0 && f.rnd.Float32() < 0.4 {
				parentID = &roots[f.rnd.Intn(len(roots))]
			}
			comment, err := f.CreateComment(author, post.ID, parentID)
			if err != nil {
				return err
			}
			if parentID == nil {
				roots = append(roots, comment.ID)
			}
			commentCount++
			logProgress("comments", commentCount)
		}

		numLikes := f.rnd.Intn(len(residents)/2 + 1)
		for _, idx := range f.rnd.Perm(len(residents))[:numLikes] {
			if err := f.CreateLike(residents[idx], post.ID); err != nil {
				return err
			}
		}
	}
	log.Printf("%d comments created", commentCount)
	return nil
}
