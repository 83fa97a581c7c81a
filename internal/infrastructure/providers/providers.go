package providers

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dadscape/diary-api/internal/config"
	"github.com/dadscape/diary-api/internal/infrastructure/database"
)

// NewDatabase opens the SQLite store at the configured path.
func NewDatabase(conf config.Config) (*gorm.DB, error) {
	return database.NewSQLite(conf.DatabasePath)
}

// MigrateDatabase applies migrations for the application models.
func MigrateDatabase(db *gorm.DB) error {
	return database.Migrate(db)
}

// NewRedis creates the client backing the distributed rate-limiter
// store. Returns nil when no address is configured; callers fall back to
// the in-memory store.
func NewRedis(conf config.Config) *redis.Client {
	if conf.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr: conf.RedisAddr,
		DB:   conf.RedisDB,
	})
}
