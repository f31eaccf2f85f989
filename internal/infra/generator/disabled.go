package generator

import (
	"context"
	"fmt"

	"localbiz-insights/internal/config"
	"localbiz-insights/internal/usecase/analysis"
)

// Disabled never contacts a model; every call is a transport failure, so the
// service always serves its fallbacks.
type Disabled struct {
	reason string
}

// NewDisabled creates a disabled backend. reason appears in errors and health output.
func NewDisabled(reason string) *Disabled {
	return &Disabled{reason: reason}
}

// Generate implements analysis.TextGenerator.
func (d *Disabled) Generate(ctx context.Context, _ string, _ analysis.GenerationConfig) (string, error) {
	return "", fmt.Errorf("%w: %s", analysis.ErrTransport, d.reason)
}

// Name implements analysis.TextGenerator.
func (d *Disabled) Name() string {
	return config.ProviderDisabled
}

// Reason explains why the backend is disabled.
func (d *Disabled) Reason() string {
	return d.reason
}

// Status implements StatusReporter.
func (d *Disabled) Status() Status {
	return Status{Backend: config.ProviderDisabled, Enabled: false, State: "disabled"}
}
