package http

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/shopflow/subbridge/internal/port/primary"
)

// ChargeNowHandler handles PUT /api/subscription/{id}/charge-now requests.
type ChargeNowHandler struct {
	bridge primary.SubscriptionBridge
	logger *zap.Logger
}

// NewChargeNowHandler creates a handler for immediate charges.
func NewChargeNowHandler(bridge primary.SubscriptionBridge, logger *zap.Logger) *ChargeNowHandler {
	return &ChargeNowHandler{
		bridge: bridge,
		logger: logger.Named("charge-now-handler"),
	}
}

// ServeHTTP forces an immediate charge. The body is optional; an omitted
// reset_schedule defaults to resetting the billing schedule.
func (h *ChargeNowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := subscriptionID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "subscription id must be numeric"})
		return
	}

	resetSchedule := true
	var req ChargeNowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.ResetSchedule != nil {
		resetSchedule = *req.ResetSchedule
	}

	result := h.bridge.ChargeNow(r.Context(), id, resetSchedule)

	if result.Fault != nil {
		respondJSON(w, http.StatusOK, FaultResponse{Error: result.Fault})
		return
	}
	respondJSON(w, http.StatusOK, result.Body)
}
