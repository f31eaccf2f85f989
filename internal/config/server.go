package config

import (
	"fmt"
	"time"

	envconfig "localbiz-insights/pkg/config"
)

// RequestTimeoutHeadroom is the minimum gap between HTTP_REQUEST_TIMEOUT and
// the longest AI timeout.
const RequestTimeoutHeadroom = 5 * time.Second

// ServerConfig holds settings for the HTTP API process.
type ServerConfig struct {
	// Addr is the listen address. Default: ":8080"
	Addr string
	// RequestTimeout bounds a whole HTTP request, including the combined
	// analysis. Default: 90s
	RequestTimeout time.Duration
	// CatalogPath points at a YAML business catalog. Empty selects the
	// embedded sample catalog.
	CatalogPath string
	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration
}

// LoadServerConfig loads server configuration from environment variables.
func LoadServerConfig() (*ServerConfig, error) {
	config := &ServerConfig{
		Addr:            envconfig.GetEnvString("HTTP_ADDR", ":8080"),
		RequestTimeout:  envconfig.GetEnvDuration("HTTP_REQUEST_TIMEOUT", 90*time.Second),
		CatalogPath:     envconfig.GetEnvString("CATALOG_PATH", ""),
		ShutdownTimeout: envconfig.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}
	return config, nil
}

// Validate checks configuration correctness.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}
	if err := envconfig.ValidateDurationRange(c.RequestTimeout, time.Second, 10*time.Minute); err != nil {
		return fmt.Errorf("HTTP_REQUEST_TIMEOUT: %w", err)
	}
	if err := envconfig.ValidatePositiveDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT: %w", err)
	}
	return nil
}

// ValidateAgainst checks that every requestor deadline in ai expires at
// least RequestTimeoutHeadroom before the request timeout, so a slow backend
// is answered with a fallback instead of a 504.
func (c *ServerConfig) ValidateAgainst(ai *AIConfig) error {
	longest := max(ai.Timeouts.Analysis, ai.Timeouts.Insights)
	if c.RequestTimeout < longest+RequestTimeoutHeadroom {
		return fmt.Errorf("HTTP_REQUEST_TIMEOUT (%s) must be at least %s: AI timeouts reach %s and %s of headroom is required",
			c.RequestTimeout, longest+RequestTimeoutHeadroom, longest, RequestTimeoutHeadroom)
	}
	return nil
}
