package analysis

import (
	"net/http"

	"localbiz-insights/internal/handler/http/respond"
	analysisUC "localbiz-insights/internal/usecase/analysis"
)

// AnalyzeHandler serves POST /api/analysis.
type AnalyzeHandler struct{ Svc *analysisUC.Service }

// ServeHTTP analyzes the posted profile.
// @Summary      Analyze a business
// @Description  Scores the digital presence of a business. Always answers 200; kind tells whether the analysis came from the model or from the fallback.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        profile body ProfileRequest true "Business profile"
// @Success      200 {object} AnalysisResponse
// @Failure      400 {object} map[string]string "Invalid request body"
// @Failure      413 {object} map[string]string "Request body too large"
// @Router       /api/analysis [post]
func (h AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decodeProfile(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result := h.Svc.AnalyzeBusiness(r.Context(), req.Profile())
	respond.JSON(w, http.StatusOK, NewAnalysisResponse(result))
}

// FullHandler serves POST /api/analysis/full.
type FullHandler struct{ Svc *analysisUC.Service }

// ServeHTTP runs the analysis and the market insights of the posted profile concurrently.
// @Summary      Analyze a business with market insights
// @Description  Runs the analysis and the insights for the profile's address and category concurrently. Each side is tagged independently.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        profile body ProfileRequest true "Business profile"
// @Success      200 {object} CombinedResponse
// @Failure      400 {object} map[string]string "Invalid request body"
// @Router       /api/analysis/full [post]
func (h FullHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decodeProfile(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result := h.Svc.AnalyzeWithInsights(r.Context(), req.Profile())
	respond.JSON(w, http.StatusOK, NewCombinedResponse(result))
}
