// Package main provides the main entry point for the Resonate gateway
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"github.com/resonatefm/resonate-gateway/app/handlers"
	"github.com/resonatefm/resonate-gateway/app/middleware"
	"github.com/resonatefm/resonate-gateway/app/router"
	"github.com/resonatefm/resonate-gateway/app/services"
	businessflow "github.com/resonatefm/resonate-gateway/business_flow"
	"github.com/resonatefm/resonate-gateway/config"
	"github.com/resonatefm/resonate-gateway/models"
	"github.com/resonatefm/resonate-gateway/repository"
	"github.com/resonatefm/resonate-gateway/utils"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Application represents the main application structure
type Application struct {
	router    *router.FiberRouter
	config    *config.Config
	server    *fiber.App
	stopFuncs []func()
}

func main() {
	log.Println("Starting Resonate gateway...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg.Logging)

	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-sigChan
	log.Println("Shutting down gracefully...")

	// Stop background workers and drain in-flight fan-outs
	for _, fn := range app.stopFuncs {
		fn()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogging routes the standard logger to a rotating file when configured
func setupLogging(cfg config.LoggingConfig) {
	if cfg.FilePath == "" {
		return
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
}

// initializeDatabase initializes the audit-trail database with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate audit log schema: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// initializeCache initializes the Redis client and verifies connectivity
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	rc := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established to %s:%d (db=%d)", cfg.RedisHost, cfg.RedisPort, cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings Redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.Config) (*Application, error) {
	var stopFuncs []func()

	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	cancelMonitor := startCacheHealthMonitor(context.Background(), rc, 30*time.Second)
	stopFuncs = append(stopFuncs, cancelMonitor)

	// Initialize repositories
	auditRepo := repository.NewAuditLogRepository(db)

	// Initialize downstream service clients
	catalogClient := services.NewCatalogClient(cfg.Services)
	socialClient := services.NewSocialGraphClient(cfg.Services)
	notificationClient := services.NewNotificationClient(cfg.Services)
	playlistClient := services.NewPlaylistClient(cfg.Services)
	userClient := services.NewUserClient(cfg.Services)
	metricsClient := services.NewMetricsClient(cfg.Services)

	// Initialize token service
	tokenService, err := services.NewTokenService(
		utils.AccessTokenTTL,
		utils.RefreshTokenTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PrivateKeyPEM,
		cfg.JWT.PublicKeyPEM,
		cfg.JWT.SecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	log.Printf("Token service initialized with issuer: %s, audience: %s", cfg.JWT.Issuer, cfg.JWT.Audience)

	// Initialize flows
	fanout := businessflow.NewNotificationFanout(socialClient, notificationClient, auditRepo, cfg.Fanout)

	releaseFlow := businessflow.NewReleaseFlow(
		catalogClient,
		metricsClient,
		fanout,
		auditRepo,
		rc,
		cfg,
	)
	stopFuncs = append(stopFuncs, releaseFlow.Wait)

	artistFlow := businessflow.NewArtistFlow(catalogClient, socialClient, rc, cfg)
	songFlow := businessflow.NewSongFlow(catalogClient, auditRepo)
	playlistFlow := businessflow.NewPlaylistFlow(playlistClient, auditRepo)
	userFlow := businessflow.NewUserFlow(userClient, socialClient)
	notificationFlow := businessflow.NewNotificationFlow(notificationClient)

	// Initialize handlers
	routerHandlers := router.Handlers{
		Release:      handlers.NewReleaseHandler(releaseFlow),
		Artist:       handlers.NewArtistHandler(artistFlow),
		Song:         handlers.NewSongHandler(songFlow),
		Playlist:     handlers.NewPlaylistHandler(playlistFlow),
		User:         handlers.NewUserHandler(userFlow),
		Notification: handlers.NewNotificationHandler(notificationFlow),
	}

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Initialize router
	appRouter := router.NewFiberRouter(cfg, routerHandlers, authMiddleware)

	fiberRouter := appRouter.(*router.FiberRouter)
	application := &Application{
		router:    fiberRouter,
		config:    cfg,
		server:    fiberRouter.GetApp(),
		stopFuncs: stopFuncs,
	}

	return application, nil
}
