package main

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-action-tracker/docs"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/handler"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/repository"
	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/http/session"
	"github.com/johnquangdev/meeting-action-tracker/internal/usecase/action"
	"github.com/johnquangdev/meeting-action-tracker/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-action-tracker/pkg/config"
	"github.com/johnquangdev/meeting-action-tracker/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-action-tracker/pkg/validator"
	"github.com/johnquangdev/meeting-action-tracker/web"
)

// @title           Meeting Action Tracker API
// @version         1.0
// @description     Tracks meetings and the follow-up actions they produce

// @host      localhost:8080
// @BasePath  /

func main() {
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

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.IPExtractor = httpmw.IPExtractor(cfg.Server.TrustProxy)
	e.Validator = pkgvalidator.New()

	renderer, err := handler.NewTemplateRenderer(web.Templates, "templates")
	if err != nil {
		zlog.Fatal("failed to load templates", zap.Error(err))
	}
	e.Renderer = renderer

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpmw.RequestID())
	e.Use(httpmw.RequestLogger(zlog))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))

	if cfg.RateLimit.RPS > 0 {
		limiter := httpmw.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		defer limiter.Close()
		e.Use(httpmw.RateLimit(limiter))
	}

	// Initialize Database
	zlog.Info("connecting to database", zap.String("driver", cfg.Database.Driver))
	db, err := database.NewDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Apply embedded migrations unless the schema is managed by cmd/migrate
	if cfg.Database.AutoMigrate {
		n, err := database.AutoMigrate(db)
		if err != nil {
			zlog.Fatal("failed to apply migrations", zap.Error(err))
		}
		zlog.Info("migrations applied", zap.Int("count", n))
	} else {
		zlog.Info("skipping migrations; run cmd/migrate to manage the schema")
	}

	// Flash message store
	flashStore, closeFlash := newFlashStore(cfg, zlog)
	defer closeFlash()
	flash := session.NewFlash(flashStore, cfg.Flash.TTL, cfg.IsProduction())

	// Initialize store and services
	store := repository.NewStore(db)
	meetingService := meeting.NewMeetingService(store, zlog)
	actionService := action.NewActionService(store, zlog)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		zlog.Fatal("failed to load static assets", zap.Error(err))
	}

	router := handler.NewRouter(
		cfg,
		zlog,
		handler.NewMeetingHandler(meetingService, actionService, zlog),
		handler.NewActionHandler(actionService, zlog),
		handler.NewPagesHandler(meetingService, actionService, flash, zlog),
		static,
		func(ctx context.Context) error { return database.Ping(ctx, db) },
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		zlog.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
		return
	}

	zlog.Info("server stopped gracefully")
}

// newFlashStore returns the configured flash backend and its closer
func newFlashStore(cfg *config.Config, zlog *zap.Logger) (cache.Store, func()) {
	if cfg.Flash.Store == config.FlashStoreRedis {
		client, err := cache.NewRedisClient(cfg)
		if err != nil {
			zlog.Fatal("failed to connect to redis", zap.Error(err))
		}
		zlog.Info("flash messages stored in redis", zap.String("addr", cfg.GetRedisAddr()))
		return cache.NewRedisStore(client), func() { _ = client.Close() }
	}

	memory := cache.NewMemoryStore(time.Minute)
	return memory, func() { _ = memory.Close() }
}
