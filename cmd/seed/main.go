// Command main runs the database seeder for GullyConnect.
package main

import (
	"flag"
	"log"

	"gullyconnect/internal/config"
	"gullyconnect/internal/database"
	"gullyconnect/internal/seed"
)

func main() {
	// Parse command line flags
	numResidents := flag.Int("residents", 50, "Number of resident identities to generate")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	maxDays := flag.Int("max-days", 90, "How many days back post timestamps spread")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d residents, %d posts, clean=%v\n", *numResidents, *numPosts, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumResidents: *numResidents,
		NumPosts:     *numPosts,
		ShouldClean:  *shouldClean,
		MaxDays:      *maxDays,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
}
