// Package analysis serves the digital presence analysis and market insight
// endpoints. Every response carries the provenance of its result.
package analysis

import (
	"errors"

	"localbiz-insights/internal/domain/entity"
	analysisUC "localbiz-insights/internal/usecase/analysis"
)

// ProfileRequest is the body of POST /api/analysis and /api/analysis/full.
type ProfileRequest struct {
	Name        string  `json:"name" example:"Padaria Doce Pão"`
	Category    string  `json:"category" example:"Padaria"`
	Rating      float64 `json:"rating" example:"4.6"`
	ReviewCount int     `json:"reviewCount" example:"200"`
	Address     string  `json:"address" example:"R. das Flores, 123, São Paulo, SP"`
	HasWebsite  bool    `json:"hasWebsite"`
	HasPhone    bool    `json:"hasPhone"`
}

func (p ProfileRequest) validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

// Profile converts the request into the domain profile.
func (p ProfileRequest) Profile() entity.BusinessProfile {
	return entity.BusinessProfile{
		Name:        p.Name,
		Category:    p.Category,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Address:     p.Address,
		HasWebsite:  p.HasWebsite,
		HasPhone:    p.HasPhone,
	}
}

// AnalysisResponse is a tagged business analysis.
type AnalysisResponse struct {
	Kind     string                  `json:"kind" example:"live"`
	Reason   string                  `json:"reason,omitempty" example:"transport"`
	Analysis entity.BusinessAnalysis `json:"analysis"`
}

// InsightsResponse is a tagged list of market insights.
type InsightsResponse struct {
	Kind     string   `json:"kind" example:"fallback"`
	Reason   string   `json:"reason,omitempty"`
	Insights []string `json:"insights"`
}

// CombinedResponse holds both tagged results of one business.
type CombinedResponse struct {
	Analysis AnalysisResponse `json:"analysis"`
	Insights InsightsResponse `json:"insights"`
}

// NewAnalysisResponse converts a tagged analysis.
func NewAnalysisResponse(r analysisUC.Result[entity.BusinessAnalysis]) AnalysisResponse {
	return AnalysisResponse{
		Kind:     string(r.Kind),
		Reason:   string(r.Reason),
		Analysis: r.Value,
	}
}

// NewInsightsResponse converts tagged insights.
func NewInsightsResponse(r analysisUC.Result[[]string]) InsightsResponse {
	return InsightsResponse{
		Kind:     string(r.Kind),
		Reason:   string(r.Reason),
		Insights: r.Value,
	}
}

// NewCombinedResponse converts a combined result.
func NewCombinedResponse(r analysisUC.CombinedResult) CombinedResponse {
	return CombinedResponse{
		Analysis: NewAnalysisResponse(r.Analysis),
		Insights: NewInsightsResponse(r.Insights),
	}
}
