package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"localbiz-insights/internal/config"
	"localbiz-insights/internal/usecase/analysis"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const claudeMessageJSON = `{
  "id": "msg_01",
  "type": "message",
  "role": "assistant",
  "model": "claude-sonnet-4-5-20250929",
  "content": [{"type": "text", "text": "[\"Insight\"]"}],
  "stop_reason": "end_turn",
  "stop_sequence": null,
  "usage": {"input_tokens": 12, "output_tokens": 8}
}`

func newTestClaude(t *testing.T, handler http.HandlerFunc) *Claude {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClaude(
		config.ClaudeConfig{APIKey: "sk-ant-test", Model: "claude-sonnet-4-5-20250929"},
		testBreakerConfig(),
		WithBaseURL(server.URL),
		WithMetrics(NewPrometheusMetrics(prometheus.NewRegistry())),
	)
}

func TestClaude_Generate(t *testing.T) {
	var body map[string]interface{}
	var path, apiKey string
	c := newTestClaude(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		apiKey = r.Header.Get("X-Api-Key")
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(claudeMessageJSON))
	})

	out, err := c.Generate(context.Background(), "Gere insights", analysis.InsightsGenerationConfig)
	require.NoError(t, err)
	assert.Equal(t, `["Insight"]`, out)

	assert.Equal(t, "/v1/messages", path)
	assert.Equal(t, "sk-ant-test", apiKey)
	assert.Equal(t, "claude-sonnet-4-5-20250929", body["model"])
	assert.Equal(t, 512.0, body["max_tokens"])
	assert.Equal(t, 0.8, body["temperature"])
	assert.Equal(t, 40.0, body["top_k"])
	assert.Equal(t, 0.95, body["top_p"])
}

func TestClaude_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "overloaded",
			status:  529,
			body:    `{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`,
			wantErr: analysis.ErrTransport,
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`,
			wantErr: analysis.ErrTransport,
		},
		{
			name:    "no text block",
			status:  http.StatusOK,
			body:    `{"id":"msg_02","type":"message","role":"assistant","model":"m","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`,
			wantErr: analysis.ErrEnvelope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClaude(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Generate(context.Background(), "p", analysis.AnalysisGenerationConfig)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClaude_DoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	c := newTestClaude(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	})

	_, err := c.Generate(context.Background(), "p", analysis.AnalysisGenerationConfig)
	require.ErrorIs(t, err, analysis.ErrTransport)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, "claude", c.Name())
}
