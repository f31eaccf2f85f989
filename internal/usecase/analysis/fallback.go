package analysis

import (
	"fmt"
	"strings"

	"localbiz-insights/internal/domain/entity"
)

// Defaults applied when an insights request names no location or category.
const (
	DefaultLocation = "São Paulo, Brasil"
	DefaultCategory = "Negócios Locais"
)

// FallbackAnalysis derives a complete analysis from the profile alone.
// It is a pure function: equal profiles give equal analyses.
func FallbackAnalysis(p entity.BusinessProfile) entity.BusinessAnalysis {
	rating := FormatRating(p.Rating)

	score := 45
	presence := "Negócio tradicional consolidado"
	websiteGap := "Ausência de website"
	if p.HasWebsite {
		score = 75
		presence = "Presença online estabelecida"
		websiteGap = "Pode melhorar SEO"
	}

	return entity.BusinessAnalysis{
		DigitalPresenceScore: score,
		Strengths: []string{
			fmt.Sprintf("Avaliação positiva de %s/5", rating),
			fmt.Sprintf("%d avaliações dos clientes", p.ReviewCount),
			presence,
		},
		Weaknesses: []string{
			websiteGap,
			"Presença limitada em redes sociais",
			"Falta de estratégia digital integrada",
		},
		Recommendations: []string{
			"Criar perfil no Google Meu Negócio",
			"Desenvolver estratégia de marketing digital",
			"Implementar sistema de gestão de reviews",
		},
		MarketOpportunities: []string{
			"Expansão digital pós-pandemia",
			"Marketing local direcionado",
		},
		CompetitiveAdvantage: "Forte reputação local com oportunidade de crescimento digital",
		Summary: fmt.Sprintf("%s possui uma base sólida com %s/5 estrelas, mas pode expandir significativamente sua presença digital para alcançar mais clientes locais.",
			p.Name, rating),
	}
}

// FallbackInsights returns the four static insights for a market.
func FallbackInsights(location, category string) []string {
	return []string{
		fmt.Sprintf("Mercado de %s em %s apresenta oportunidades de crescimento", category, location),
		"Consumidores locais valorizam atendimento personalizado",
		"Marketing digital pode aumentar visibilidade em 40%",
		"Parcerias locais podem expandir base de clientes",
	}
}

// InsightsTarget trims location and category and substitutes the defaults
// for blank values.
func InsightsTarget(location, category string) (string, string) {
	location = strings.TrimSpace(location)
	category = strings.TrimSpace(category)
	if location == "" {
		location = DefaultLocation
	}
	if category == "" {
		category = DefaultCategory
	}
	return location, category
}
