package handlers

import (
	"context"
	"net/http"

	"order-pricing-service/internal/api/dto"
)

// HealthChecker is the probe surface of one remote endpoint family.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}

type UpstreamHealthHandler struct {
	Upstreams map[string]HealthChecker
}

// HandleUpstreams probes every configured remote family. Always 200: an
// unhealthy upstream is reported, not treated as our own failure.
func (h *UpstreamHealthHandler) HandleUpstreams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.UpstreamHealthResponse{Upstreams: make(map[string]bool, len(h.Upstreams))}
	for name, checker := range h.Upstreams {
		res.Upstreams[name] = checker.HealthCheck(r.Context())
	}

	writeJSON(w, r, http.StatusOK, res)
}
