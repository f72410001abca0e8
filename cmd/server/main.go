package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/solemate/solemate-backend/config"
	"github.com/solemate/solemate-backend/internal/app/controller"
	"github.com/solemate/solemate-backend/internal/app/repository"
	"github.com/solemate/solemate-backend/internal/app/service"
	"github.com/solemate/solemate-backend/internal/db"
	"github.com/solemate/solemate-backend/internal/router"
	"github.com/solemate/solemate-backend/internal/scheduler"
	"github.com/solemate/solemate-backend/pkg/logger"
	"github.com/solemate/solemate-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting SoleMate Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations (includes reference-data seeding)
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize search cache (optional)
	cacheEnabled := cfg.Redis.Enabled
	if cacheEnabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, search cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
			cacheEnabled = false
		} else {
			defer func() {
				if err := redis.Close(); err != nil {
					logger.Error("Failed to close Redis connection", err)
				}
			}()
		}
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db.GetDB())
	matchRepo := repository.NewMatchRepository(db.GetDB())

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo, cacheEnabled, cfg.Catalog.SearchCacheTTL)
	matchService := service.NewMatchService(matchRepo, catalogService)

	// Load the initial catalog snapshot; the server is useless without one.
	if err := catalogService.Reload(context.Background()); err != nil {
		logger.Fatal("Failed to load initial catalog snapshot", err)
	}

	// Start periodic snapshot reload
	catalogScheduler := scheduler.NewCatalogScheduler(catalogService, cfg.Catalog.ReloadCron)
	if err := catalogScheduler.Start(); err != nil {
		logger.Fatal("Failed to start catalog scheduler", err)
	}
	defer catalogScheduler.Stop()

	// Initialize controllers
	catalogController := controller.NewCatalogController(catalogService)
	matchController := controller.NewMatchController(matchService)

	// Setup router
	r := router.NewRouter(catalogController, matchController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
