package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"localbiz-insights/internal/domain/entity"
)

const analysisPromptTemplate = `
Analise o seguinte negócio local e forneça uma análise detalhada de sua presença digital e oportunidades de mercado:

Nome: %s
Categoria: %s
Avaliação: %s/5 (%d avaliações)
Endereço: %s
Tem website: %s
Tem telefone: %s

Forneça uma análise em JSON com os seguintes campos:
- digitalPresenceScore (0-100): pontuação da presença digital
- strengths: array de 3-5 pontos fortes
- weaknesses: array de 3-5 pontos fracos
- recommendations: array de 3-5 recomendações específicas
- marketOpportunities: array de 2-4 oportunidades de mercado
- competitiveAdvantage: uma frase sobre vantagem competitiva
- summary: resumo em 2-3 frases

Responda APENAS com o JSON válido, sem texto adicional.
`

const insightsPromptTemplate = `
Gere insights de mercado para um negócio da categoria "%s" localizado em "%s".

Forneça 4-6 insights específicos sobre:
- Tendências do mercado local
- Comportamento do consumidor
- Oportunidades sazonais
- Estratégias de crescimento

Responda com um array JSON de strings, sem texto adicional.
`

// AnalysisPrompt renders the instruction asking for a BusinessAnalysis JSON object.
func AnalysisPrompt(p entity.BusinessProfile) string {
	return fmt.Sprintf(analysisPromptTemplate,
		p.Name,
		p.Category,
		FormatRating(p.Rating),
		p.ReviewCount,
		p.Address,
		yesNo(p.HasWebsite),
		yesNo(p.HasPhone),
	)
}

// InsightsPrompt renders the instruction asking for a JSON array of insights.
func InsightsPrompt(location, category string) string {
	return fmt.Sprintf(insightsPromptTemplate, category, location)
}

// FormatRating renders a rating in its shortest decimal form: 4.6, 4, 3.75.
// Negative zero prints as 0. Magnitudes of at least 1e21 or below 1e-6 use
// exponent form with an explicit sign and no padding (1e+21, 1.5e-7).
func FormatRating(r float64) string {
	switch {
	case math.IsNaN(r):
		return "NaN"
	case math.IsInf(r, 1):
		return "Infinity"
	case math.IsInf(r, -1):
		return "-Infinity"
	case r == 0:
		return "0"
	}

	if abs := math.Abs(r); abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(r, 'e', -1, 64), "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
