package business

import (
	"net/http"

	analysisUC "localbiz-insights/internal/usecase/analysis"
	"localbiz-insights/internal/usecase/directory"
)

// Register mounts the directory endpoints on mux.
func Register(mux *http.ServeMux, dir *directory.Service, analysis *analysisUC.Service) {
	mux.Handle("GET /api/businesses", ListHandler{dir})
	mux.Handle("GET /api/businesses/{id}", GetHandler{dir})
	mux.Handle("POST /api/businesses/{id}/analysis", AnalyzeHandler{Directory: dir, Analysis: analysis})
}
