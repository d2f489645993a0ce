package main

import (
	"net/http"

	"go.uber.org/dig"
	"go.uber.org/zap"

	httphandler "github.com/shopflow/subbridge/internal/adapter/primary/http"
	"github.com/shopflow/subbridge/internal/adapter/secondary/sealgateway"
	"github.com/shopflow/subbridge/internal/config"
	"github.com/shopflow/subbridge/internal/domain/service"
	"github.com/shopflow/subbridge/internal/port/primary"
	"github.com/shopflow/subbridge/internal/port/secondary"
)

func buildContainer() (*dig.Container, error) {
	c := dig.New()

	// --- Configuration ---
	if err := c.Provide(config.New); err != nil {
		return nil, err
	}

	// --- Logger ---
	if err := c.Provide(newLogger); err != nil {
		return nil, err
	}

	// --- Secondary Adapters (infrastructure) ---

	// Upstream gateway (implements secondary.UpstreamGateway)
	if err := c.Provide(func(cfg *config.Config, logger *zap.Logger) secondary.UpstreamGateway {
		return sealgateway.New(cfg, logger)
	}); err != nil {
		return nil, err
	}

	// --- Domain Services ---

	if err := c.Provide(service.NewBridgeService); err != nil {
		return nil, err
	}

	// Bind concrete BridgeService to the primary port interface
	if err := c.Provide(func(s *service.BridgeService) primary.SubscriptionBridge {
		return s
	}); err != nil {
		return nil, err
	}

	// --- Primary Adapters ---

	// HTTP router
	if err := c.Provide(func(bridge primary.SubscriptionBridge, cfg *config.Config, logger *zap.Logger) http.Handler {
		return httphandler.NewRouter(bridge, cfg, logger)
	}); err != nil {
		return nil, err
	}

	return c, nil
}
