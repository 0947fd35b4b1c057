// Package bootstrap wires shared runtime dependencies for the binaries.
package bootstrap

import (
	"fmt"
	"strings"

	"gullyconnect/internal/cache"
	"gullyconnect/internal/config"
	"gullyconnect/internal/database"
	"gullyconnect/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData populates the database with demo areas, posts and
	// engagement. Only honored in the development environment.
	SeedDemoData bool
}

// InitRuntime connects to the database (and read replica when configured),
// initializes Redis, and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := database.ConnectRead(cfg); err != nil {
		return nil, nil, fmt.Errorf("read replica connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData && strings.EqualFold(cfg.Env, "development") {
		if err := seed.Seed(db, seed.Options{NumResidents: 25, NumPosts: 100}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
