package config

import (
	"os"
	"testing"
	"time"
)

func TestNew_defaults(t *testing.T) {
	// Clear environment to test defaults
	envKeys := []string{"PORT", "BRIDGE_SECRET", "SEAL_TOKEN", "SEAL_BASE_URL", "UPSTREAM_TIMEOUT_SECONDS", "UPSTREAM_STATUS_STYLE", "ENVIRONMENT", "LOG_LEVEL"}
	for _, key := range envKeys {
		os.Unsetenv(key)
	}

	cfg := New()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"HTTPAddr", cfg.HTTPAddr, ":3000"},
		{"BridgeSecret", cfg.BridgeSecret, ""},
		{"UpstreamToken", cfg.UpstreamToken, ""},
		{"UpstreamBaseURL", cfg.UpstreamBaseURL, "https://app.sealsubscriptions.com/shopify/merchant/api"},
		{"UpstreamTimeout", cfg.UpstreamTimeout, 30 * time.Second},
		{"StatusStyle", cfg.StatusStyle, StatusStylePath},
		{"Environment", cfg.Environment, "local"},
		{"LogLevel", cfg.LogLevel, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNew_fromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("BRIDGE_SECRET", "bridge-secret")
	t.Setenv("SEAL_TOKEN", "seal-token")
	t.Setenv("SEAL_BASE_URL", "https://upstream.example.com/api")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "5")
	t.Setenv("UPSTREAM_STATUS_STYLE", "singular")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := New()

	if cfg.HTTPAddr != ":8081" {
		t.Fatalf("expected :8081, got %s", cfg.HTTPAddr)
	}
	if cfg.BridgeSecret != "bridge-secret" {
		t.Fatalf("expected bridge-secret, got %s", cfg.BridgeSecret)
	}
	if cfg.UpstreamToken != "seal-token" {
		t.Fatalf("expected seal-token, got %s", cfg.UpstreamToken)
	}
	if cfg.UpstreamBaseURL != "https://upstream.example.com/api" {
		t.Fatalf("expected override base URL, got %s", cfg.UpstreamBaseURL)
	}
	if cfg.UpstreamTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.UpstreamTimeout)
	}
	if cfg.StatusStyle != StatusStyleSingular {
		t.Fatalf("expected singular, got %s", cfg.StatusStyle)
	}
	if cfg.Environment != "production" {
		t.Fatalf("expected production, got %s", cfg.Environment)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug, got %s", cfg.LogLevel)
	}
}

func TestNew_invalidValuesFallBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("UPSTREAM_STATUS_STYLE", "both-at-once")

	cfg := New()

	if cfg.UpstreamTimeout != 30*time.Second {
		t.Fatalf("expected default 30s timeout, got %s", cfg.UpstreamTimeout)
	}
	if cfg.StatusStyle != StatusStylePath {
		t.Fatalf("expected fallback to path style, got %s", cfg.StatusStyle)
	}
}
