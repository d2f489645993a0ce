package config

import (
	"os"
	"strconv"
	"time"
)

// Status-change endpoint styles supported across upstream API revisions.
// "path" addresses the subscription in the URL (PUT /subscriptions/:id),
// "singular" uses the shared endpoint (PUT /subscription) with the id in
// the body. The two revisions are not interchangeable: sending one shape
// to the other endpoint produces silent upstream 404s, so the active
// style must be chosen explicitly.
const (
	StatusStylePath     = "path"
	StatusStyleSingular = "singular"
)

// Config holds all application configuration values.
type Config struct {
	// HTTP server
	HTTPAddr string

	// Bridge auth
	BridgeSecret string

	// Upstream provider
	UpstreamToken   string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	StatusStyle     string // "path" (default) or "singular"

	// Application
	Environment string
	LogLevel    string
}

// New creates a Config populated from environment variables with sensible defaults.
func New() *Config {
	cfg := &Config{
		HTTPAddr:        ":" + getEnv("PORT", "3000"),
		BridgeSecret:    getEnv("BRIDGE_SECRET", ""),
		UpstreamToken:   getEnv("SEAL_TOKEN", ""),
		UpstreamBaseURL: getEnv("SEAL_BASE_URL", "https://app.sealsubscriptions.com/shopify/merchant/api"),
		UpstreamTimeout: 30 * time.Second,
		StatusStyle:     getEnv("UPSTREAM_STATUS_STYLE", StatusStylePath),
		Environment:     getEnv("ENVIRONMENT", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if v := getEnv("UPSTREAM_TIMEOUT_SECONDS", ""); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.UpstreamTimeout = time.Duration(secs) * time.Second
		}
	}

	if cfg.StatusStyle != StatusStylePath && cfg.StatusStyle != StatusStyleSingular {
		cfg.StatusStyle = StatusStylePath
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
