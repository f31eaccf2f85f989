package http

import (
	"net/http"

	"localbiz-insights/internal/handler/http/respond"
	"localbiz-insights/internal/infra/generator"
)

// StatusReporter exposes the state of the text-generation backend.
type StatusReporter = generator.StatusReporter

// AIHealthHandler serves /health/ai and /ready/ai.
type AIHealthHandler struct {
	reporter StatusReporter
}

// NewAIHealthHandler creates an AIHealthHandler.
func NewAIHealthHandler(reporter StatusReporter) *AIHealthHandler {
	return &AIHealthHandler{reporter: reporter}
}

// AIHealthResponse is the body of both AI endpoints.
type AIHealthResponse struct {
	Status      string `json:"status,omitempty"`
	Backend     string `json:"backend"`
	State       string `json:"state"`
	Message     string `json:"message,omitempty"`
	CircuitOpen bool   `json:"circuit_open,omitempty"`
	Ready       *bool  `json:"ready,omitempty"`
}

// Health reports whether live answers are possible.
// GET /health/ai returns 200 when the backend is enabled with a closed or
// half-open breaker, 503 otherwise.
func (h *AIHealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	st := h.reporter.Status()
	resp := AIHealthResponse{
		Status:      statusHealthy,
		Backend:     st.Backend,
		State:       st.State,
		CircuitOpen: st.CircuitOpen,
	}

	code := http.StatusOK
	switch {
	case !st.Enabled:
		resp.Status = statusUnhealthy
		resp.Message = "ai disabled"
		code = http.StatusServiceUnavailable
	case st.CircuitOpen:
		resp.Status = statusUnhealthy
		resp.Message = "circuit breaker open"
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, resp)
}

// Ready reports whether the breaker admits traffic.
// GET /ready/ai returns 503 only while the breaker is open; a disabled backend
// is ready because it answers immediately with fallbacks.
func (h *AIHealthHandler) Ready(w http.ResponseWriter, _ *http.Request) {
	st := h.reporter.Status()
	ready := !st.CircuitOpen
	resp := AIHealthResponse{
		Backend:     st.Backend,
		State:       st.State,
		CircuitOpen: st.CircuitOpen,
		Ready:       &ready,
	}
	if !ready {
		resp.Message = "circuit breaker open"
		respond.JSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	respond.JSON(w, http.StatusOK, resp)
}
