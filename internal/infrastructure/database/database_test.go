package database_test

import (
	"context"
	"path/filepath"
	"testing"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/database/databasetest"
	"github.com/johnquangdev/meeting-action-tracker/pkg/config"
)

func TestMigrationsRoundTrip(t *testing.T) {
	db := databasetest.New(t)

	assert.True(t, db.Migrator().HasTable("meetings"))
	assert.True(t, db.Migrator().HasTable("actions"))

	n, err := database.AutoMigrate(db)
	require.NoError(t, err)
	assert.Zero(t, n, "migrations must be idempotent")

	n, err = database.Migrate(db, migrate.Down, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, db.Migrator().HasTable("actions"))
	assert.False(t, db.Migrator().HasTable("meetings"))
}

func TestNewDBSQLiteFile(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "tracker.db"),
		},
	}

	db, err := database.NewDB(cfg, zap.NewNop())
	require.NoError(t, err)
	defer database.CloseDB(db)

	_, err = database.AutoMigrate(db)
	require.NoError(t, err)
	assert.NoError(t, database.Ping(context.Background(), db))
}

func TestNewDBUnknownDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "oracle"}}

	_, err := database.NewDB(cfg, zap.NewNop())
	assert.Error(t, err)
}
