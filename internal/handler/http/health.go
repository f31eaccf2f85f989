// Package http wires the HTTP surface of the service: health probes, request
// metrics and the middleware shared by the analysis and directory handlers.
package http

import (
	"net/http"
	"time"

	"localbiz-insights/internal/handler/http/respond"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the result of a single check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// CatalogCounter reports the number of loaded listings.
type CatalogCounter interface {
	Len() int
}

// HealthHandler reports liveness along with catalog and generator details.
// A degraded generator does not make the service unhealthy because every
// analysis still resolves with a fallback.
type HealthHandler struct {
	Version   string
	Catalog   CatalogCounter
	Generator StatusReporter
}

// ServeHTTP returns 200 unless the catalog is missing.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	checks := map[string]CheckStatus{
		"catalog":   h.checkCatalog(),
		"generator": h.checkGenerator(),
	}

	status := statusHealthy
	code := http.StatusOK
	if checks["catalog"].Status == statusUnhealthy {
		status = statusUnhealthy
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkCatalog() CheckStatus {
	if h.Catalog == nil {
		return CheckStatus{Status: statusUnhealthy, Message: "not configured"}
	}
	return CheckStatus{
		Status:  statusHealthy,
		Details: map[string]any{"listings": h.Catalog.Len()},
	}
}

func (h *HealthHandler) checkGenerator() CheckStatus {
	if h.Generator == nil {
		return CheckStatus{Status: statusDegraded, Message: "not configured"}
	}
	st := h.Generator.Status()
	check := CheckStatus{
		Status: statusHealthy,
		Details: map[string]any{
			"backend": st.Backend,
			"state":   st.State,
		},
	}
	switch {
	case !st.Enabled:
		check.Status = statusDegraded
		check.Message = "ai disabled, serving fallbacks"
	case st.CircuitOpen:
		check.Status = statusDegraded
		check.Message = "circuit breaker open, serving fallbacks"
	}
	return check
}
