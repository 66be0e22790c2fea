package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Aadhavm10/PremScout/internal/api"
	"github.com/Aadhavm10/PremScout/internal/api/handlers"
	"github.com/Aadhavm10/PremScout/internal/api/middleware"
	"github.com/Aadhavm10/PremScout/internal/providers"
	"github.com/Aadhavm10/PremScout/internal/services"
	"github.com/Aadhavm10/PremScout/internal/store"
	"github.com/Aadhavm10/PremScout/pkg/config"
	"github.com/Aadhavm10/PremScout/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Gameweek archive is optional
	var archive *store.Store
	if cfg.DatabaseURL != "" {
		db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
		if err != nil {
			logrus.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		archive = store.NewStore(db)
		if err := archive.AutoMigrate(); err != nil {
			logrus.Fatalf("Failed to migrate archive schema: %v", err)
		}
	} else {
		logrus.Info("DATABASE_URL not set, gameweek archive disabled")
	}

	// Redis cache is optional
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logrus.Info("REDIS_URL not set, response cache disabled")
	}
	cacheService := services.NewCacheService(redisClient)

	// Photo lookup + roster import
	fplClient := providers.NewFPLClient(cfg.FPLBootstrapURL, cfg.FPLTimeout, cfg.FPLRateLimit, logrus.StandardLogger())

	var archiver services.SnapshotArchiver
	if archive != nil {
		archiver = archive
	}
	rosterService := services.NewRosterService(cfg.DataDir, fplClient, archiver, logrus.StandardLogger())

	if !cfg.SkipInitialImport {
		if err := rosterService.Refresh(context.Background()); err != nil {
			logrus.Errorf("Initial roster import failed: %v", err)
		}
	}
	if err := rosterService.Start(cfg.RefreshSchedule); err != nil {
		logrus.Fatalf("Failed to start roster service: %v", err)
	}
	defer rosterService.Stop()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	healthHandler := handlers.NewHealthHandler(rosterService)
	router.GET("/health", healthHandler.Health)

	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, rosterService, cacheService, archive, cfg.CacheTTL)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
