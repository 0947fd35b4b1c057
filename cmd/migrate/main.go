// Command migrate applies the database schema explicitly. Non-production
// environments automigrate on connect; production deployments run this once
// per release instead.
package main

import (
	"fmt"
	"log"

	"gullyconnect/internal/config"
	"gullyconnect/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("schema applied")
	return nil
}
