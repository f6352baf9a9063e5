// Package router provides HTTP routing, middleware configuration, and server setup for the gateway
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cache"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/handlers"
	"github.com/resonatefm/resonate-gateway/app/middleware"
	"github.com/resonatefm/resonate-gateway/config"
	"github.com/resonatefm/resonate-gateway/utils"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// Handlers bundles every handler the router wires up
type Handlers struct {
	Release      handlers.ReleaseHandlerInterface
	Artist       handlers.ArtistHandlerInterface
	Song         handlers.SongHandlerInterface
	Playlist     handlers.PlaylistHandlerInterface
	User         handlers.UserHandlerInterface
	Notification handlers.NotificationHandlerInterface
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app      *fiber.App
	cfg      *config.Config
	handlers Handlers
	auth     *middleware.AuthMiddleware
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(cfg *config.Config, h Handlers, auth *middleware.AuthMiddleware) Router {
	app := fiber.New(fiber.Config{
		AppName:      "Resonate Gateway API",
		ServerHeader: "resonate-gateway",
		ErrorHandler: errorHandler,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ProxyHeader:  cfg.Server.ProxyHeader,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:      app,
		cfg:      cfg,
		handlers: h,
		auth:     auth,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	log.Println("Setting up routes...")

	r.setupMiddleware()

	if r.cfg.Metrics.Enabled {
		r.app.Get(r.cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := r.app.Group("/api/v1")

	// Health check route (no rate limiting)
	api.Get("/health", r.healthCheck)

	api.Use(limiter.New(limiter.Config{
		Max:        r.cfg.Security.GlobalRateLimit,
		Expiration: r.cfg.Security.RateLimitWindow,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error: dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}))

	// Artist endpoints. Reads are public; publishing requires the artist's
	// owner to be signed in.
	artists := api.Group("/artists")
	artists.Get("/:artistId", r.handlers.Artist.GetArtist)
	artists.Get("/:artistId/followers/count", r.handlers.Artist.GetFollowerCount)
	artists.Get("/:artistId/releases", r.handlers.Release.ListReleases)
	artists.Post("/:artistId/releases", r.handlers.Release.CreateRelease, r.auth.Authenticate())
	artists.Post("/:artistId/songs", r.handlers.Song.CreateSong, r.auth.Authenticate())

	// Release endpoints
	api.Get("/releases/:releaseId", r.handlers.Release.GetRelease)

	// Song endpoints
	api.Get("/songs", r.handlers.Song.SearchSongs)
	api.Get("/songs/:songId", r.handlers.Song.GetSong)

	// Playlist endpoints
	playlists := api.Group("/playlists")
	playlists.Get("/:playlistId", r.handlers.Playlist.GetPlaylist)
	playlists.Post("/", r.handlers.Playlist.CreatePlaylist, r.auth.Authenticate())
	playlists.Post("/:playlistId/songs", r.handlers.Playlist.AddSong, r.auth.Authenticate())
	playlists.Delete("/:playlistId/songs/:songId", r.handlers.Playlist.RemoveSong, r.auth.Authenticate())

	// User endpoints ("me" resolves through the bearer token when present)
	api.Get("/users/:userId", r.handlers.User.GetProfile, r.auth.OptionalAuth())
	api.Get("/users/:userId/followers", r.handlers.User.ListFollowers)

	// Notification inbox endpoints (always authenticated)
	notifications := api.Group("/notifications", r.auth.Authenticate())
	notifications.Get("/", r.handlers.Notification.ListNotifications)
	notifications.Put("/:notificationId/read", r.handlers.Notification.MarkRead)

	// Not found handler
	r.app.Use(r.notFoundHandler)

	log.Println("Routes configured successfully")
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	// Security headers middleware
	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000, // 1 year
		HSTSExcludeSubdomains: false,
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' data: https:; connect-src 'self' https:; frame-ancestors 'none';",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		XDNSPrefetchControl:   "off",
		XDownloadOptions:      "noopen",
		XPermittedCrossDomain: "none",
	}))

	// CORS middleware
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: r.cfg.Security.AllowedOrigins,
		AllowMethods: r.cfg.Security.AllowedMethods,
		AllowHeaders: r.cfg.Security.AllowedHeaders,
		ExposeHeaders: []string{
			"X-Request-ID",
		},
		AllowCredentials: r.cfg.Security.AllowCredentials,
		MaxAge:           utils.CORSMaxAge,
	}))

	// Compression middleware for performance
	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
		Next: func(c fiber.Ctx) bool {
			// Skip compression for media content
			contentType := c.Get("Content-Type")
			return strings.Contains(contentType, "image/") ||
				strings.Contains(contentType, "audio/")
		},
	}))

	// Cache middleware for hot public catalog reads
	r.app.Use(cache.New(cache.Config{
		Next: func(c fiber.Ctx) bool {
			if c.Method() != "GET" {
				return true
			}
			return !strings.Contains(c.Path(), "/releases/") &&
				!strings.Contains(c.Path(), "/songs/")
		},
		Expiration:          1 * time.Minute,
		DisableCacheControl: false,
	}))

	// Structured request logging
	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","protocol":"${protocol}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent},"referer":"${referer}"}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health" || c.Path() == r.cfg.Metrics.Path
		},
	}))

	// Prometheus HTTP metrics
	if r.cfg.Metrics.Enabled {
		r.app.Use(middleware.Metrics())
	}

	// Recovery middleware with custom error handling
	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    "ok",
			"timestamp": utils.UTCNow().Unix(),
			"version":   r.cfg.Deployment.Version,
			"service":   "resonate-gateway",
		},
	})
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	requestID := c.Locals("requestid")

	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": requestID,
			},
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error %d: %v", code, err)

	requestID := c.Locals("requestid")

	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
			Details: fiber.Map{
				"timestamp":  utils.UTCNow().Unix(),
				"request_id": requestID,
			},
		},
	})
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
