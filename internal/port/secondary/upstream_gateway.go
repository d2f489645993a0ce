package secondary

import (
	"context"

	"github.com/shopflow/subbridge/internal/domain/entity"
)

// UpstreamGateway defines the secondary port for calling the billing
// provider's HTTP API.
type UpstreamGateway interface {
	// Call issues one request against the provider. The error return is
	// reserved for transport-level failures (connect, timeout); upstream
	// rejections come back as a response with OK=false.
	Call(ctx context.Context, method, path string, body any) (*entity.UpstreamResponse, error)

	// Close releases any resources held by the gateway.
	Close() error
}
