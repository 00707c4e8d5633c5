package main

import (
	"flag"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-action-tracker/pkg/config"
	"github.com/johnquangdev/meeting-action-tracker/pkg/logger"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	limit := flag.Int("limit", 0, "maximum number of migrations to apply (0 = all)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	var dir migrate.MigrationDirection
	switch *direction {
	case "up":
		dir = migrate.Up
	case "down":
		dir = migrate.Down
	default:
		zlog.Fatal("unknown migration direction", zap.String("direction", *direction))
	}

	// Initialize database using GORM
	db, err := database.NewDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	n, err := database.Migrate(db, dir, *limit)
	if err != nil {
		zlog.Fatal("failed to apply migrations", zap.Error(err))
	}

	zlog.Info("migrations applied",
		zap.String("direction", *direction),
		zap.Int("count", n),
	)
}
