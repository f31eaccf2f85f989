package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"localbiz-insights/internal/domain/entity"

	"github.com/xeipuuv/gojsonschema"
)

const analysisSchemaJSON = `{
  "type": "object",
  "required": [
    "digitalPresenceScore", "strengths", "weaknesses", "recommendations",
    "marketOpportunities", "competitiveAdvantage", "summary"
  ],
  "properties": {
    "digitalPresenceScore": {"type": "number", "minimum": -1e9, "maximum": 1e9},
    "strengths":            {"type": "array", "items": {"type": "string"}},
    "weaknesses":           {"type": "array", "items": {"type": "string"}},
    "recommendations":      {"type": "array", "items": {"type": "string"}},
    "marketOpportunities":  {"type": "array", "items": {"type": "string"}},
    "competitiveAdvantage": {"type": "string"},
    "summary":              {"type": "string"}
  }
}`

const insightsSchemaJSON = `{
  "type": "array",
  "minItems": 1,
  "items": {"type": "string"}
}`

var (
	analysisSchema = mustSchema(analysisSchemaJSON)
	insightsSchema = mustSchema(insightsSchemaJSON)
)

func mustSchema(doc string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("analysis: invalid built-in schema: %v", err))
	}
	return schema
}

// analysisDocument mirrors the wire object; the score may arrive as a
// non-integral JSON number.
type analysisDocument struct {
	DigitalPresenceScore float64  `json:"digitalPresenceScore"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	Recommendations      []string `json:"recommendations"`
	MarketOpportunities  []string `json:"marketOpportunities"`
	CompetitiveAdvantage string   `json:"competitiveAdvantage"`
	Summary              string   `json:"summary"`
}

// DecodeAnalysis validates raw against the analysis schema and decodes it.
// The 0-100 score range is not checked, but scores beyond ±1e9 are rejected
// so the rounded value always fits an int. Errors wrap ErrParse.
func DecodeAnalysis(raw json.RawMessage) (entity.BusinessAnalysis, error) {
	if err := validate(analysisSchema, raw); err != nil {
		return entity.BusinessAnalysis{}, err
	}

	var doc analysisDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entity.BusinessAnalysis{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return entity.BusinessAnalysis{
		DigitalPresenceScore: int(math.Round(doc.DigitalPresenceScore)),
		Strengths:            doc.Strengths,
		Weaknesses:           doc.Weaknesses,
		Recommendations:      doc.Recommendations,
		MarketOpportunities:  doc.MarketOpportunities,
		CompetitiveAdvantage: doc.CompetitiveAdvantage,
		Summary:              doc.Summary,
	}, nil
}

// DecodeInsights validates raw as a non-empty array of strings and decodes it.
// Errors wrap ErrParse.
func DecodeInsights(raw json.RawMessage) ([]string, error) {
	if err := validate(insightsSchema, raw); err != nil {
		return nil, err
	}

	var insights []string
	if err := json.Unmarshal(raw, &insights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return insights, nil
}

func validate(schema *gojsonschema.Schema, raw json.RawMessage) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrParse, strings.Join(problems, "; "))
}
