package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"localbiz-insights/internal/config"
	"localbiz-insights/internal/resilience/circuitbreaker"
	"localbiz-insights/internal/usecase/analysis"
)

// maxGeminiResponseBytes caps how much of a reply body is read.
const maxGeminiResponseBytes = 4 << 20

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

// geminiResponse keeps text as a pointer so that a part without a text field
// is told apart from an empty reply.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Gemini calls a generateContent endpoint over plain HTTP.
type Gemini struct {
	backend
	endpoint   *url.URL
	apiKey     string
	httpClient *http.Client
}

// NewGemini creates a Gemini backend. The API key is sent as the key query
// parameter and never logged.
func NewGemini(cfg config.GeminiConfig, cbCfg config.CircuitBreakerConfig, opts ...Option) (*Gemini, error) {
	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse gemini endpoint: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("gemini endpoint must be http or https, got %q", endpoint.Scheme)
	}

	o := buildOptions(circuitbreaker.GeminiAPIConfig(), cbCfg, opts)
	return &Gemini{
		backend:    backend{name: config.ProviderGemini, breaker: o.breaker, metrics: o.metrics},
		endpoint:   endpoint,
		apiKey:     cfg.APIKey,
		httpClient: o.httpClient,
	}, nil
}

// Generate implements analysis.TextGenerator.
func (g *Gemini) Generate(ctx context.Context, prompt string, cfg analysis.GenerationConfig) (string, error) {
	return g.execute(ctx, func(ctx context.Context, _ string) (string, error) {
		return g.doGenerate(ctx, prompt, cfg)
	})
}

func (g *Gemini) doGenerate(ctx context.Context, prompt string, cfg analysis.GenerationConfig) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     cfg.Temperature,
			TopK:            cfg.TopK,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", analysis.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.requestURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", analysis.ErrTransport, stripURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", analysis.ErrTransport, stripURL(err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxGeminiResponseBytes))
		return "", fmt.Errorf("%w: gemini api status %d", analysis.ErrTransport, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxGeminiResponseBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: read body: %w", analysis.ErrTransport, ctxErr)
		}
		return "", fmt.Errorf("%w: read body: %v", analysis.ErrEnvelope, err)
	}

	return parseGeminiEnvelope(raw)
}

// requestURL returns the endpoint with the key query parameter set.
func (g *Gemini) requestURL() string {
	u := *g.endpoint
	q := u.Query()
	q.Set("key", g.apiKey)
	u.RawQuery = q.Encode()
	return u.String()
}

// parseGeminiEnvelope returns candidates[0].content.parts[0].text.
func parseGeminiEnvelope(raw []byte) (string, error) {
	var envelope geminiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("%w: decode: %v", analysis.ErrEnvelope, err)
	}
	if len(envelope.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", analysis.ErrEnvelope)
	}
	parts := envelope.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == nil {
		return "", fmt.Errorf("%w: first candidate has no text part", analysis.ErrEnvelope)
	}
	return *parts[0].Text, nil
}

// stripURL drops the request URL, which carries the API key, from client errors.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
