package http

import "net/http"

// HealthHandler handles GET /health requests.
type HealthHandler struct{}

// NewHealthHandler creates the health check handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP reports liveness. The bridge holds no state and no
// connections worth probing, so up means healthy.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{OK: true})
}
