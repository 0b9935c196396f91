package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle used across the application.
var DB *gorm.DB

// Init opens the SQLite database and runs auto-migration.
// An empty databasePath falls back to dmapsite.db.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "dmapsite.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey.
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	return Migrate(DB)
}

// Migrate creates tables for the content models.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&Company{},
		&About{},
		&Contact{},
		&Certification{},
		&Service{},
		&Project{},
		&Client{},
		&BlogPost{},
		&Testimonial{},
		&ContactSubmission{},
		&NewsletterSubscriber{},
	)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
