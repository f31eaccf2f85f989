package analysis

import (
	"net/http"

	"localbiz-insights/internal/handler/http/respond"
	analysisUC "localbiz-insights/internal/usecase/analysis"
)

// InsightsHandler serves GET /api/insights.
type InsightsHandler struct{ Svc *analysisUC.Service }

// ServeHTTP returns market insights for a category in a location.
// @Summary      Market insights
// @Description  Lists insights about a business category in a location. Blank parameters default to São Paulo, Brasil and Negócios Locais.
// @Tags         analysis
// @Produce      json
// @Param        location query string false "Location" default(São Paulo, Brasil)
// @Param        category query string false "Business category" default(Negócios Locais)
// @Success      200 {object} InsightsResponse
// @Router       /api/insights [get]
func (h InsightsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	location, category := analysisUC.InsightsTarget(q.Get("location"), q.Get("category"))

	result := h.Svc.MarketInsights(r.Context(), location, category)
	respond.JSON(w, http.StatusOK, NewInsightsResponse(result))
}
