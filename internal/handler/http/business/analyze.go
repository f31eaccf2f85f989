package business

import (
	"net/http"

	analysisHTTP "localbiz-insights/internal/handler/http/analysis"
	"localbiz-insights/internal/handler/http/respond"
	analysisUC "localbiz-insights/internal/usecase/analysis"
	"localbiz-insights/internal/usecase/directory"
)

type AnalyzeHandler struct {
	Directory *directory.Service
	Analysis  *analysisUC.Service
}

// ServeHTTP analyzes a catalog entry together with its market insights.
// @Summary      Analyze a listed business
// @Description  Looks the listing up and runs the analysis and the insights for its address and category concurrently.
// @Tags         businesses
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200 {object} AnalysisResponse
// @Failure      404 {object} map[string]string "Listing not found"
// @Router       /api/businesses/{id}/analysis [post]
func (h AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l, err := h.Directory.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	combined := h.Analysis.AnalyzeWithInsights(r.Context(), l.Profile())
	respond.JSON(w, http.StatusOK, AnalysisResponse{
		Business: toDTO(l),
		Analysis: analysisHTTP.NewAnalysisResponse(combined.Analysis),
		Insights: analysisHTTP.NewInsightsResponse(combined.Insights),
	})
}
