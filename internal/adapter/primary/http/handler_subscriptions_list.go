package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/shopflow/subbridge/internal/port/primary"
)

// ListSubscriptionsHandler handles GET /api/subscriptions requests.
type ListSubscriptionsHandler struct {
	bridge primary.SubscriptionBridge
	logger *zap.Logger
}

// NewListSubscriptionsHandler creates a handler for subscription lookups.
func NewListSubscriptionsHandler(bridge primary.SubscriptionBridge, logger *zap.Logger) *ListSubscriptionsHandler {
	return &ListSubscriptionsHandler{
		bridge: bridge,
		logger: logger.Named("list-subscriptions-handler"),
	}
}

// ServeHTTP looks up subscriptions by email. This operation never fails
// at the HTTP layer: a missing email or an upstream failure comes back
// as a 200 with an empty list and a structured error.
func (h *ListSubscriptionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result := h.bridge.ListSubscriptions(r.Context(), r.URL.Query().Get("email"))

	respondJSON(w, http.StatusOK, ListSubscriptionsResponse{
		Subscriptions: result.Subscriptions,
		Error:         result.Fault,
	})
}
