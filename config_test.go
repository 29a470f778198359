package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SAWERIA_MODE", "")
	t.Setenv("SAWERIA_BACKEND_URL", "")
	t.Setenv("SAWERIA_FRONTEND_URL", "")
	t.Setenv("PROXY_FILE", "")

	cfg := NewConfig()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ModeDirect, cfg.Mode)
	assert.Equal(t, "https://backend.saweria.co", cfg.BackendURL)
	assert.Equal(t, "https://saweria.co", cfg.FrontendURL)
	assert.Equal(t, "proxies.txt", cfg.ProxyFile)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("SAWERIA_MODE", ModeSession)
	t.Setenv("SAWERIA_BACKEND_URL", "http://127.0.0.1:9001")
	t.Setenv("SAWERIA_FRONTEND_URL", "http://127.0.0.1:9002")
	t.Setenv("HYPER_API_KEY", "test-key")

	cfg := NewConfig()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, ModeSession, cfg.Mode)
	assert.Equal(t, "http://127.0.0.1:9001", cfg.BackendURL)
	assert.Equal(t, "http://127.0.0.1:9002", cfg.FrontendURL)
	assert.Equal(t, "test-key", cfg.HyperAPIKey)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:        "3000",
			Mode:        ModeDirect,
			BackendURL:  "https://backend.saweria.co",
			FrontendURL: "https://saweria.co",
		}
	}

	t.Run("DirectModeOK", func(t *testing.T) {
		require.NoError(t, base().ValidateConfig())
	})

	t.Run("UnknownMode", func(t *testing.T) {
		cfg := base()
		cfg.Mode = "hybrid"
		assert.Error(t, cfg.ValidateConfig())
	})

	t.Run("SessionModeNeedsAPIKey", func(t *testing.T) {
		cfg := base()
		cfg.Mode = ModeSession
		assert.Error(t, cfg.ValidateConfig())

		cfg.HyperAPIKey = "key"
		assert.NoError(t, cfg.ValidateConfig())
	})

	t.Run("EmptyUpstreams", func(t *testing.T) {
		cfg := base()
		cfg.BackendURL = ""
		assert.Error(t, cfg.ValidateConfig())
	})
}
