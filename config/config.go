// Package config provides configuration management and environment variable handling for the application
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the gateway
type Config struct {
	Database   DatabaseConfig   `json:"database"`
	Server     ServerConfig     `json:"server"`
	Security   SecurityConfig   `json:"security"`
	JWT        JWTConfig        `json:"jwt"`
	Services   ServicesConfig   `json:"services"`
	Fanout     FanoutConfig     `json:"fanout"`
	Logging    LoggingConfig    `json:"logging"`
	Metrics    MetricsConfig    `json:"metrics"`
	Cache      CacheConfig      `json:"cache"`
	Deployment DeploymentConfig `json:"deployment"`
}

type DatabaseConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Name            string        `json:"name"`
	User            string        `json:"user"`
	Password        string        `json:"password"`
	SSLMode         string        `json:"ssl_mode"`
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `json:"conn_max_idle_time"`
}

type ServerConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	IdleTimeout     time.Duration `json:"idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	BodyLimit       int           `json:"body_limit"`
	EnableMetrics   bool          `json:"enable_metrics"`
	ProxyHeader     string        `json:"proxy_header"`
}

type SecurityConfig struct {
	AllowedOrigins   []string      `json:"allowed_origins"`
	AllowedMethods   []string      `json:"allowed_methods"`
	AllowedHeaders   []string      `json:"allowed_headers"`
	AllowCredentials bool          `json:"allow_credentials"`
	CORSMaxAge       int           `json:"cors_max_age"`
	GlobalRateLimit  int           `json:"global_rate_limit"`
	RateLimitWindow  time.Duration `json:"rate_limit_window"`
}

type JWTConfig struct {
	Issuer        string `json:"issuer"`
	Audience      string `json:"audience"`
	UseRSAKeys    bool   `json:"use_rsa_keys"`
	PublicKeyPEM  string `json:"public_key_pem"`
	PrivateKeyPEM string `json:"private_key_pem"`
	SecretKey     string `json:"secret_key"`
}

// ServicesConfig holds base URLs and timeouts for downstream microservices
type ServicesConfig struct {
	CatalogBaseURL      string        `json:"catalog_base_url"`
	SocialBaseURL       string        `json:"social_base_url"`
	NotificationBaseURL string        `json:"notification_base_url"`
	PlaylistBaseURL     string        `json:"playlist_base_url"`
	UserBaseURL         string        `json:"user_base_url"`
	MetricsBaseURL      string        `json:"metrics_base_url"`
	RequestTimeout      time.Duration `json:"request_timeout"`
}

// FanoutConfig controls the release notification fan-out
type FanoutConfig struct {
	FollowerPageSize int           `json:"follower_page_size"`
	BatchSize        int           `json:"batch_size"`
	MaxPages         int           `json:"max_pages"`
	MaxConcurrency   int           `json:"max_concurrency"`
	DispatchTimeout  time.Duration `json:"dispatch_timeout"`
}

type LoggingConfig struct {
	Level      string `json:"level"`
	FilePath   string `json:"file_path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
	Compress   bool   `json:"compress"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

type CacheConfig struct {
	RedisHost      string        `json:"redis_host"`
	RedisPort      int           `json:"redis_port"`
	RedisPassword  string        `json:"redis_password"`
	RedisDB        int           `json:"redis_db"`
	KeyPrefix      string        `json:"key_prefix"`
	ArtistCacheTTL time.Duration `json:"artist_cache_ttl"`
}

type DeploymentConfig struct {
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// Load reads the gateway configuration from the environment (and an optional .env file)
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Host:            getEnvString("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			Name:            getEnvString("DB_NAME", "resonate_gateway"),
			User:            getEnvString("DB_USER", "postgres"),
			Password:        getEnvString("DB_PASSWORD", ""),
			SSLMode:         getEnvString("DB_SSL_MODE", "require"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getEnvDuration("DB_CONN_MAX_IDLE_TIME", 15*time.Minute),
		},
		Server: ServerConfig{
			Host:            getEnvString("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			BodyLimit:       getEnvInt("SERVER_BODY_LIMIT", 4*1024*1024), // 4MB
			EnableMetrics:   getEnvBool("SERVER_ENABLE_METRICS", true),
			ProxyHeader:     getEnvString("SERVER_PROXY_HEADER", "X-Real-IP"),
		},
		Security: SecurityConfig{
			AllowedOrigins:   getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"https://resonate.fm", "https://app.resonate.fm", "https://artists.resonate.fm"}),
			AllowedMethods:   getEnvStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"}),
			AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
			CORSMaxAge:       getEnvInt("CORS_MAX_AGE", 86400),
			GlobalRateLimit:  getEnvInt("GLOBAL_RATE_LIMIT", 2000),
			RateLimitWindow:  getEnvDuration("RATE_LIMIT_WINDOW", 1*time.Minute),
		},
		JWT: JWTConfig{
			Issuer:        getEnvString("JWT_ISSUER", "resonate-identity"),
			Audience:      getEnvString("JWT_AUDIENCE", "resonate-api"),
			UseRSAKeys:    getEnvBool("JWT_USE_RSA_KEYS", false),
			PublicKeyPEM:  getEnvString("JWT_PUBLIC_KEY", ""),
			PrivateKeyPEM: getEnvString("JWT_PRIVATE_KEY", ""),
			SecretKey:     getEnvString("JWT_SECRET_KEY", ""),
		},
		Services: ServicesConfig{
			CatalogBaseURL:      getEnvString("CATALOG_SERVICE_URL", "http://catalog:8081"),
			SocialBaseURL:       getEnvString("SOCIAL_SERVICE_URL", "http://social-graph:8082"),
			NotificationBaseURL: getEnvString("NOTIFICATION_SERVICE_URL", "http://notifications:8083"),
			PlaylistBaseURL:     getEnvString("PLAYLIST_SERVICE_URL", "http://playlists:8084"),
			UserBaseURL:         getEnvString("USER_SERVICE_URL", "http://users:8085"),
			MetricsBaseURL:      getEnvString("METRICS_SERVICE_URL", "http://metrics:8086"),
			RequestTimeout:      getEnvDuration("SERVICE_REQUEST_TIMEOUT", 10*time.Second),
		},
		Fanout: FanoutConfig{
			FollowerPageSize: getEnvInt("FANOUT_FOLLOWER_PAGE_SIZE", 50),
			BatchSize:        getEnvInt("FANOUT_BATCH_SIZE", 50),
			MaxPages:         getEnvInt("FANOUT_MAX_PAGES", 10000),
			MaxConcurrency:   getEnvInt("FANOUT_MAX_CONCURRENCY", 8),
			DispatchTimeout:  getEnvDuration("FANOUT_DISPATCH_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			FilePath:   getEnvString("LOG_FILE_PATH", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
			Path:    getEnvString("METRICS_PATH", "/metrics"),
		},
		Cache: CacheConfig{
			RedisHost:      getEnvString("REDIS_HOST", "localhost"),
			RedisPort:      getEnvInt("REDIS_PORT", 6379),
			RedisPassword:  getEnvString("REDIS_PASSWORD", ""),
			RedisDB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix:      getEnvString("REDIS_KEY_PREFIX", "resonate:gateway"),
			ArtistCacheTTL: getEnvDuration("ARTIST_CACHE_TTL", 10*time.Minute),
		},
		Deployment: DeploymentConfig{
			Environment: getEnvString("APP_ENV", "production"),
			Version:     getEnvString("APP_VERSION", "dev"),
		},
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration invariants that would otherwise fail at runtime
func Validate(cfg *Config) error {
	if cfg.JWT.UseRSAKeys {
		if cfg.JWT.PublicKeyPEM == "" {
			return fmt.Errorf("JWT_PUBLIC_KEY is required when JWT_USE_RSA_KEYS is enabled")
		}
	} else if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required when not using RSA keys")
	}

	if cfg.Fanout.BatchSize <= 0 {
		return fmt.Errorf("FANOUT_BATCH_SIZE must be positive, got %d", cfg.Fanout.BatchSize)
	}
	if cfg.Fanout.FollowerPageSize <= 0 {
		return fmt.Errorf("FANOUT_FOLLOWER_PAGE_SIZE must be positive, got %d", cfg.Fanout.FollowerPageSize)
	}
	if cfg.Fanout.MaxConcurrency <= 0 {
		return fmt.Errorf("FANOUT_MAX_CONCURRENCY must be positive, got %d", cfg.Fanout.MaxConcurrency)
	}

	for name, u := range map[string]string{
		"CATALOG_SERVICE_URL":      cfg.Services.CatalogBaseURL,
		"SOCIAL_SERVICE_URL":       cfg.Services.SocialBaseURL,
		"NOTIFICATION_SERVICE_URL": cfg.Services.NotificationBaseURL,
		"PLAYLIST_SERVICE_URL":     cfg.Services.PlaylistBaseURL,
		"USER_SERVICE_URL":         cfg.Services.UserBaseURL,
		"METRICS_SERVICE_URL":      cfg.Services.MetricsBaseURL,
	} {
		if u == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	return nil
}

// loadEnvFile loads key=value pairs from a local .env file if present
func loadEnvFile() error {
	envFile := ".env"

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// .env file doesn't exist, continue with environment variables
		return nil
	}

	file, err := os.Open(envFile)
	if err != nil {
		return fmt.Errorf("failed to open .env file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			if len(parts) == 2 {
				key := strings.TrimSpace(parts[0])
				value := strings.TrimSpace(parts[1])

				// Remove quotes if present
				if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
					(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`)) {
					value = value[1 : len(value)-1]
				}

				// Set environment variable if not already set
				if os.Getenv(key) == "" {
					os.Setenv(key, value)
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading .env file: %w", err)
	}

	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var result []string
		for _, item := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
