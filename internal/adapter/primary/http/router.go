package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shopflow/subbridge/internal/config"
	"github.com/shopflow/subbridge/internal/port/primary"
)

// NewRouter creates the HTTP router with all bridge routes registered.
// /health stays open; everything under /api sits behind the bearer guard
// and the soft-recovery middleware that keeps local faults out of the
// 5xx range.
func NewRouter(
	bridge primary.SubscriptionBridge,
	cfg *config.Config,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Method(http.MethodGet, "/health", NewHealthHandler())

	r.Group(func(r chi.Router) {
		r.Use(RequireBearer(cfg.BridgeSecret, logger))
		r.Use(SoftRecoverer(logger))

		r.Method(http.MethodGet, "/api/subscriptions", NewListSubscriptionsHandler(bridge, logger))
		r.Method(http.MethodPut, "/api/subscription/{id}", NewStatusChangeHandler(bridge, logger))
		r.Method(http.MethodPut, "/api/subscription/{id}/charge-now", NewChargeNowHandler(bridge, logger))
		r.Method(http.MethodPut, "/api/subscription/{id}/reschedule", NewRescheduleHandler(bridge, logger))
	})

	return r
}
