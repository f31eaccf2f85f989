package analysis

import (
	"net/http"

	analysisUC "localbiz-insights/internal/usecase/analysis"
)

// Register mounts the analysis endpoints on mux.
func Register(mux *http.ServeMux, svc *analysisUC.Service) {
	mux.Handle("POST /api/analysis", AnalyzeHandler{svc})
	mux.Handle("POST /api/analysis/full", FullHandler{svc})
	mux.Handle("GET /api/insights", InsightsHandler{svc})
}
