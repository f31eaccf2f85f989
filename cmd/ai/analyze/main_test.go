package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"localbiz-insights/internal/usecase/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downGenerator struct{}

func (downGenerator) Generate(context.Context, string, analysis.GenerationConfig) (string, error) {
	return "", errors.New("no route to host")
}

func (downGenerator) Name() string { return "down" }

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{
		"--name", "Padaria Doce Pão", "--category", "Padaria", "--rating", "4.6",
		"--reviews", "200", "--address", "São Paulo, SP", "--website", "--phone",
	})
	require.NoError(t, err)

	assert.Equal(t, "Padaria Doce Pão", opts.profile.Name)
	assert.Equal(t, 4.6, opts.profile.Rating)
	assert.Equal(t, 200, opts.profile.ReviewCount)
	assert.True(t, opts.profile.HasWebsite)
	assert.True(t, opts.profile.HasPhone)
	assert.Equal(t, "Padaria", opts.category)
	assert.Equal(t, "text", opts.output)
	assert.Equal(t, 90*time.Second, opts.timeout)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := map[string][]string{
		"missing name": {"--category", "Padaria"},
		"bad output":   {"--name", "X", "--output", "xml"},
		"bad rating":   {"--name", "X", "--rating", "high"},
		"unknown flag": {"--name", "X", "--stars", "5"},
		"non-positive": {"--name", "X", "--timeout", "0s"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseFlags(args)
			assert.Error(t, err)
		})
	}

	_, err := parseFlags([]string{"--insights-only"})
	assert.NoError(t, err)
}

func TestRun_InsightsOnlyJSON(t *testing.T) {
	opts, err := parseFlags([]string{"--insights-only", "--location", "Belo Horizonte, MG", "--category", "Restaurante", "--output", "json"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), analysis.NewService(downGenerator{}), opts, &buf))

	var out InsightsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "fallback", out.Kind)
	assert.Equal(t, "transport", out.Reason)
	assert.Equal(t, analysis.FallbackInsights("Belo Horizonte, MG", "Restaurante"), out.Insights)
}

func TestRun_CombinedText(t *testing.T) {
	opts, err := parseFlags([]string{"--name", "Loja Tech Pro", "--rating", "4", "--website"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), analysis.NewService(downGenerator{}), opts, &buf))

	text := buf.String()
	assert.Contains(t, text, "Loja Tech Pro (fallback, transport)")
	assert.Contains(t, text, "Digital presence score: 75/100")
	assert.Contains(t, text, "Market insights for "+analysis.DefaultCategory+" in "+analysis.DefaultLocation)
}
