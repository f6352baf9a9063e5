package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://catalog:8081", cfg.Services.CatalogBaseURL)
	assert.Equal(t, "http://social-graph:8082", cfg.Services.SocialBaseURL)
	assert.Equal(t, 10*time.Second, cfg.Services.RequestTimeout)

	assert.Equal(t, 50, cfg.Fanout.FollowerPageSize)
	assert.Equal(t, 50, cfg.Fanout.BatchSize)
	assert.Equal(t, 10000, cfg.Fanout.MaxPages)
	assert.Equal(t, 8, cfg.Fanout.MaxConcurrency)

	assert.Equal(t, "resonate:gateway", cfg.Cache.KeyPrefix)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("FANOUT_BATCH_SIZE", "25")
	t.Setenv("FANOUT_DISPATCH_TIMEOUT", "3s")
	t.Setenv("CATALOG_SERVICE_URL", "http://catalog.internal:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Fanout.BatchSize)
	assert.Equal(t, 3*time.Second, cfg.Fanout.DispatchTimeout)
	assert.Equal(t, "http://catalog.internal:9000", cfg.Services.CatalogBaseURL)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		t.Setenv("JWT_SECRET_KEY", "test-secret")
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.JWT.SecretKey = ""
		assert.Error(t, Validate(cfg))
	})

	t.Run("rsa mode requires public key", func(t *testing.T) {
		cfg := base()
		cfg.JWT.UseRSAKeys = true
		cfg.JWT.PublicKeyPEM = ""
		assert.Error(t, Validate(cfg))
	})

	t.Run("non-positive batch size", func(t *testing.T) {
		cfg := base()
		cfg.Fanout.BatchSize = 0
		assert.Error(t, Validate(cfg))
	})

	t.Run("empty service url", func(t *testing.T) {
		cfg := base()
		cfg.Services.NotificationBaseURL = ""
		assert.Error(t, Validate(cfg))
	})

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, Validate(base()))
	})
}
