package database

import (
	"context"
	"embed"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/glebarez/sqlite"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-action-tracker/pkg/config"
)

//go:embed migrations
var migrationsFS embed.FS

// NewDB opens the configured database with GORM, retrying until the
// server answers or cfg.Database.ConnectTimeout elapses.
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	// Configure GORM logger; missing rows are reported as domain errors instead
	gormLogCfg := logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Info,
		IgnoreRecordNotFoundError: true,
		Colorful:                  true,
	}
	if cfg.IsProduction() {
		gormLogCfg.LogLevel = logger.Error
		gormLogCfg.Colorful = false
	}
	gormLogger := logger.New(stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags), gormLogCfg)

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	// Open connection
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get generic database object to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Connection pool settings
	if cfg.Database.Driver == config.DriverSQLite {
		// sqlite allows one writer; a single connection serializes transactions
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// Test connection
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cfg.Database.ConnectTimeout
	err = backoff.RetryNotify(sqlDB.Ping, policy, func(err error, wait time.Duration) {
		log.Warn("database not reachable, retrying",
			zap.String("driver", cfg.Database.Driver),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected", zap.String("driver", cfg.Database.Driver))

	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.GetDatabaseDSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.GetDatabaseDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// migrationDialect maps the GORM dialector name onto the sql-migrate dialect
// and the embedded migrations directory.
func migrationDialect(db *gorm.DB) (string, error) {
	switch name := db.Dialector.Name(); name {
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migrations for dialect %q", name)
	}
}

// MigrationSource returns the embedded migrations for the database dialect
func MigrationSource(db *gorm.DB) (migrate.MigrationSource, string, error) {
	dialect, err := migrationDialect(db)
	if err != nil {
		return nil, "", err
	}
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations/" + dialect,
	}, dialect, nil
}

// Migrate applies up to max migrations in the given direction (max <= 0 means all)
func Migrate(db *gorm.DB, direction migrate.MigrationDirection, max int) (int, error) {
	source, dialect, err := MigrationSource(db)
	if err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %w", err)
	}

	n, err := migrate.ExecMax(sqlDB, dialect, source, direction, max)
	if err != nil {
		return n, fmt.Errorf("failed to apply migration, error: %w", err)
	}
	return n, nil
}

// AutoMigrate applies every pending up migration
func AutoMigrate(db *gorm.DB) (int, error) {
	return Migrate(db, migrate.Up, 0)
}

// Ping checks that the database answers within ctx
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
