package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shopflow/subbridge/internal/domain"
	"github.com/shopflow/subbridge/internal/port/primary"
)

// StatusChangeHandler handles PUT /api/subscription/{id} requests.
type StatusChangeHandler struct {
	bridge primary.SubscriptionBridge
	logger *zap.Logger
}

// NewStatusChangeHandler creates a handler for subscription status changes.
func NewStatusChangeHandler(bridge primary.SubscriptionBridge, logger *zap.Logger) *StatusChangeHandler {
	return &StatusChangeHandler{
		bridge: bridge,
		logger: logger.Named("status-change-handler"),
	}
}

// ServeHTTP applies a lifecycle action to a subscription. Bad input is
// the only 400; upstream failures come back as a 200 with an error body,
// and upstream success is passed through unchanged.
func (h *StatusChangeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := subscriptionID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "subscription id must be numeric"})
		return
	}

	var req StatusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.bridge.ChangeStatus(r.Context(), id, req.Action)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("status change failed", zap.Error(err))
		respondJSON(w, http.StatusOK, FaultResponse{Error: domain.BridgeFault(err.Error())})
		return
	}

	if result.Fault != nil {
		respondJSON(w, http.StatusOK, FaultResponse{Error: result.Fault})
		return
	}
	respondJSON(w, http.StatusOK, result.Body)
}
