package sealgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopflow/subbridge/internal/config"
	"github.com/shopflow/subbridge/internal/domain/entity"
	"github.com/shopflow/subbridge/internal/port/secondary"
)

// Gateway implements secondary.UpstreamGateway against the provider's
// merchant API, injecting the credential header on every call.
type Gateway struct {
	client  *http.Client
	baseURL string
	token   string
	logger  *zap.Logger
}

// New creates a Gateway with a bounded request timeout.
func New(cfg *config.Config, logger *zap.Logger) secondary.UpstreamGateway {
	client := &http.Client{
		Timeout: cfg.UpstreamTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logger.Info("upstream gateway initialized",
		zap.String("base_url", cfg.UpstreamBaseURL),
		zap.Duration("timeout", client.Timeout),
	)

	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(cfg.UpstreamBaseURL, "/"),
		token:   cfg.UpstreamToken,
		logger:  logger.Named("seal-gateway"),
	}
}

// Call issues one request against the provider and classifies the
// response body. Non-2xx statuses are reported via OK=false, never as an
// error: upstream rejection is a normal outcome the caller relays.
func (g *Gateway) Call(ctx context.Context, method, path string, body any) (*entity.UpstreamResponse, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling upstream request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating upstream request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Seal-Token", g.token)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing upstream request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response body: %w", err)
	}

	parsed := parseBody(resp.Header.Get("Content-Type"), raw)
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	g.logger.Debug("upstream call completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode),
		zap.Bool("ok", ok),
	)

	return &entity.UpstreamResponse{
		OK:     ok,
		Status: resp.StatusCode,
		Body:   parsed,
	}, nil
}

// parseBody classifies the response by content type. JSON bodies that
// fail to parse degrade to an empty object; non-JSON bodies are wrapped
// verbatim under "non_json".
func parseBody(contentType string, raw []byte) map[string]any {
	if strings.Contains(contentType, "application/json") {
		parsed := map[string]any{}
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return map[string]any{}
		}
		return parsed
	}
	return map[string]any{"non_json": string(raw)}
}

// Close releases resources.
func (g *Gateway) Close() error {
	if g.client != nil {
		g.client.CloseIdleConnections()
	}
	return nil
}
