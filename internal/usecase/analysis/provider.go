package analysis

import (
	"context"
	"errors"
)

var (
	// ErrTransport marks failures to obtain a reply at all: network errors,
	// non-2xx statuses, deadline expiry, an open circuit or a disabled backend.
	ErrTransport = errors.New("text generation transport failure")

	// ErrEnvelope marks a reply whose envelope does not hold the generated text.
	ErrEnvelope = errors.New("malformed text generation envelope")

	// ErrExtraction marks generated text with no bracketed JSON in it.
	ErrExtraction = errors.New("no JSON found in generated text")

	// ErrParse marks bracketed text that is not valid JSON or does not match
	// the expected document shape.
	ErrParse = errors.New("generated JSON rejected")
)

// GenerationConfig carries the sampling parameters sent with a prompt.
type GenerationConfig struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// Sampling parameters per operation.
var (
	AnalysisGenerationConfig = GenerationConfig{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 1024}
	InsightsGenerationConfig = GenerationConfig{Temperature: 0.8, TopK: 40, TopP: 0.95, MaxOutputTokens: 512}
)

// TextGenerator submits one prompt to a language model and returns the raw
// generated text.
//
// Implementations must wrap failures with ErrTransport or ErrEnvelope so the
// service can tag the fallback it serves. Errors that wrap neither are
// treated as transport failures.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)

	// Name identifies the backend in logs, metrics and health checks.
	Name() string
}
