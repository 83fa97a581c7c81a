package database

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dadscape/diary-api/internal/infrastructure/database/models"
)

// NewSQLite opens the store file, creating the parent directory when
// missing. Foreign-key enforcement is switched on at connection time so
// diary deletes cascade into user_progress.
func NewSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	dsn := path + "?_pragma=foreign_keys(1)"
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
}

// Migrate creates missing tables and indices. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Diary{},
		&models.ClanMember{},
		&models.UserProgress{},
		&models.APIKey{},
		&models.ConfigEntry{},
	)
}
