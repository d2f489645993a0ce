package http

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/shopflow/subbridge/internal/domain"
)

// RequireBearer guards a route group with an exact-match bearer check.
// No trimming, no case folding: the header must equal "Bearer <secret>"
// byte for byte. On mismatch the guarded handler never runs.
func RequireBearer(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	expected := "Bearer " + secret
	authLogger := logger.Named("auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != expected {
				authLogger.Warn("rejected unauthorized request",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				respondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SoftRecoverer converts a handler panic into a 200 bridge_exception
// body. Callers treat this bridge as a normalization layer; upstream- or
// bridge-caused faults must never surface as a 5xx.
func SoftRecoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	recLogger := logger.Named("recoverer")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					recLogger.Error("recovered from handler panic",
						zap.String("path", r.URL.Path),
						zap.Any("panic", rec),
					)
					respondJSON(w, http.StatusOK, FaultResponse{
						Error: domain.BridgeFault(fmt.Sprintf("%v", rec)),
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
