package databasetest

import (
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/database"
)

// PostgresURLEnv names the variable holding the test database URL
const PostgresURLEnv = "TEST_DATABASE_URL"

// NewPostgres returns a migrated postgres database with empty tables.
// The test is skipped when TEST_DATABASE_URL is not set.
func NewPostgres(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(PostgresURLEnv)
	if dsn == "" {
		t.Skip(PostgresURLEnv + " not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}

	if _, err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	truncate := func() error {
		return db.Exec("TRUNCATE actions, meetings RESTART IDENTITY").Error
	}
	if err := truncate(); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	t.Cleanup(func() {
		_ = truncate()
		_ = database.CloseDB(db)
	})
	return db
}
