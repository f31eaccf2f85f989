// Package business serves the read-only business directory and runs the
// combined analysis for a catalog entry.
package business

import (
	"localbiz-insights/internal/domain/entity"
	analysisHTTP "localbiz-insights/internal/handler/http/analysis"
)

// DTO is a listing as served by the directory endpoints.
type DTO struct {
	ID          string  `json:"id" example:"1"`
	Name        string  `json:"name" example:"Padaria Doce Pão"`
	Category    string  `json:"category" example:"Padaria"`
	Rating      float64 `json:"rating" example:"4.6"`
	ReviewCount int     `json:"reviewCount" example:"200"`
	Address     string  `json:"address" example:"R. das Flores, 123, São Paulo, SP"`
	Image       string  `json:"image,omitempty" example:"/assets/padaria.jpg"`
	HasWebsite  bool    `json:"hasWebsite"`
	HasPhone    bool    `json:"hasPhone"`
	IsOnline    bool    `json:"isOnline"`
}

func toDTO(l entity.Listing) DTO {
	return DTO{
		ID:          l.ID,
		Name:        l.Name,
		Category:    l.Category,
		Rating:      l.Rating,
		ReviewCount: l.ReviewCount,
		Address:     l.Address,
		Image:       l.Image,
		HasWebsite:  l.HasWebsite,
		HasPhone:    l.HasPhone,
		IsOnline:    l.IsOnline,
	}
}

// AnalysisResponse is the combined analysis of a catalog entry.
type AnalysisResponse struct {
	Business DTO                           `json:"business"`
	Analysis analysisHTTP.AnalysisResponse `json:"analysis"`
	Insights analysisHTTP.InsightsResponse `json:"insights"`
}
