package analysis

import (
	"errors"

	"localbiz-insights/internal/domain/entity"
)

// Kind is the provenance of a result.
type Kind string

const (
	KindLive     Kind = "live"
	KindFallback Kind = "fallback"
)

// Reason says which stage failed when a fallback was served.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonTransport  Reason = "transport"
	ReasonEnvelope   Reason = "envelope"
	ReasonExtraction Reason = "extraction"
	ReasonParse      Reason = "parse"
)

// Result is a value tagged with where it came from. Reason is ReasonNone for
// live values.
type Result[T any] struct {
	Kind   Kind
	Reason Reason
	Value  T
}

// Live tags v as decoded from the model's reply.
func Live[T any](v T) Result[T] {
	return Result[T]{Kind: KindLive, Value: v}
}

// Fallback tags v as the static value served after a failure.
func Fallback[T any](v T, reason Reason) Result[T] {
	return Result[T]{Kind: KindFallback, Reason: reason, Value: v}
}

// IsLive reports whether the value came from the model.
func (r Result[T]) IsLive() bool {
	return r.Kind == KindLive
}

// CombinedResult holds the analysis and the market insights of one business.
type CombinedResult struct {
	Analysis Result[entity.BusinessAnalysis]
	Insights Result[[]string]
}

// ReasonOf classifies err into the stage that failed.
func ReasonOf(err error) Reason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, ErrEnvelope):
		return ReasonEnvelope
	case errors.Is(err, ErrExtraction):
		return ReasonExtraction
	case errors.Is(err, ErrParse):
		return ReasonParse
	default:
		return ReasonTransport
	}
}
