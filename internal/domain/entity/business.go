// Package entity defines the core domain values of the local business directory:
// the business profile sent for analysis, the analysis produced for it, and the
// catalog listing the directory serves.
package entity

// BusinessProfile is the input to one analysis request.
// Ranges are not validated; a negative rating is analyzed as given.
type BusinessProfile struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Address     string  `json:"address"`
	HasWebsite  bool    `json:"hasWebsite"`
	HasPhone    bool    `json:"hasPhone"`
}

// BusinessAnalysis is the AI-generated (or fallback) digital presence analysis
// of a single business. JSON names match the keys the model is asked to produce.
type BusinessAnalysis struct {
	// DigitalPresenceScore is intended to be within 0-100.
	DigitalPresenceScore int      `json:"digitalPresenceScore"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	Recommendations      []string `json:"recommendations"`
	MarketOpportunities  []string `json:"marketOpportunities"`
	CompetitiveAdvantage string   `json:"competitiveAdvantage"`
	Summary              string   `json:"summary"`
}
