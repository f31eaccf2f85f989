package metrics

import "time"

// RecordAnalysisResult records the provenance of one requestor result.
// operation is "analysis" or "insights"; kind is "live" or "fallback".
func RecordAnalysisResult(operation, kind, reason string, duration time.Duration) {
	AnalysisResultsTotal.WithLabelValues(operation, kind, reason).Inc()
	AnalysisDuration.WithLabelValues(operation, kind).Observe(duration.Seconds())
}

// UpdateCatalogListings sets the catalog size gauge.
func UpdateCatalogListings(count int) {
	CatalogListings.Set(float64(count))
}
