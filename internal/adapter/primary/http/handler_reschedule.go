package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shopflow/subbridge/internal/domain"
	"github.com/shopflow/subbridge/internal/port/primary"
)

// RescheduleHandler handles PUT /api/subscription/{id}/reschedule requests.
type RescheduleHandler struct {
	bridge primary.SubscriptionBridge
	logger *zap.Logger
}

// NewRescheduleHandler creates a handler for billing-attempt reschedules.
func NewRescheduleHandler(bridge primary.SubscriptionBridge, logger *zap.Logger) *RescheduleHandler {
	return &RescheduleHandler{
		bridge: bridge,
		logger: logger.Named("reschedule-handler"),
	}
}

// ServeHTTP moves a subscription's billing attempt to a new date/time.
// Missing date, time or timezone is a 400; everything past validation is
// reported in a 200 body, success and soft failure alike.
func (h *RescheduleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := subscriptionID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "subscription id must be numeric"})
		return
	}

	var req RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.bridge.Reschedule(r.Context(), req.toEntity(id))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("reschedule failed", zap.Error(err))
		respondJSON(w, http.StatusOK, FaultResponse{Error: domain.BridgeFault(err.Error())})
		return
	}

	if result.Fault != nil {
		respondJSON(w, http.StatusOK, FaultResponse{Error: result.Fault})
		return
	}
	respondJSON(w, http.StatusOK, RescheduleResponse{
		OK:               true,
		BillingAttemptID: result.BillingAttemptID,
		Result:           result.Result,
	})
}
