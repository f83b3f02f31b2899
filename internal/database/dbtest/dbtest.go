package dbtest

import (
	"path/filepath"
	"testing"
	"time"

	"launchpad/config"
	"launchpad/internal/database"

	"gorm.io/gorm"
)

// New opens a migrated sqlite database in a temp dir. One connection
// keeps sqlite writers from tripping over each other.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchpad.db")
	db, err := database.NewDB(&config.DatabaseConfig{
		Driver:          "sqlite",
		DSN:             path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
