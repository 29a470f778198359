package main

import (
	"fmt"
	"os"
)

// Operating modes. Direct talks straight to the backend with static browser
// headers; session negotiates challenge credentials before every chain.
const (
	ModeDirect  = "direct"
	ModeSession = "session"
)

// Build-time variables - inject via ldflags
// Example: go build -ldflags "-X main.hyperAPIKey=YOUR_KEY"
var hyperAPIKey string // -X main.hyperAPIKey=...

// GetHyperAPIKey returns the Hyper API key (build-time or env fallback).
func GetHyperAPIKey() string {
	if hyperAPIKey != "" {
		return hyperAPIKey
	}
	return os.Getenv("HYPER_API_KEY")
}

// Config contains application configuration parameters.
type Config struct {
	// Server configuration
	Port string

	// Upstream configuration
	Mode        string
	BackendURL  string
	FrontendURL string

	// Session mode resources
	HyperAPIKey string
	ProxyFile   string
}

// NewConfig builds the configuration from the environment. PORT is the only
// externally mandated variable; the rest default to the production upstreams.
func NewConfig() *Config {
	cfg := &Config{
		Port:        "3000",
		Mode:        ModeDirect,
		BackendURL:  "https://backend.saweria.co",
		FrontendURL: "https://saweria.co",
		HyperAPIKey: GetHyperAPIKey(),
		ProxyFile:   "proxies.txt",
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("SAWERIA_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("SAWERIA_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("SAWERIA_FRONTEND_URL"); v != "" {
		cfg.FrontendURL = v
	}
	if v := os.Getenv("PROXY_FILE"); v != "" {
		cfg.ProxyFile = v
	}

	return cfg
}

// ValidateConfig checks the configuration for values that would only fail
// later at request time.
func (c *Config) ValidateConfig() error {
	if c.Mode != ModeDirect && c.Mode != ModeSession {
		return fmt.Errorf("invalid SAWERIA_MODE %q: must be %q or %q", c.Mode, ModeDirect, ModeSession)
	}
	if c.Mode == ModeSession && c.HyperAPIKey == "" {
		return fmt.Errorf("session mode requires HYPER_API_KEY")
	}
	if c.BackendURL == "" || c.FrontendURL == "" {
		return fmt.Errorf("backend and frontend URLs must not be empty")
	}
	return nil
}
