package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		open   byte
		close  byte
		want   string
		wantOK bool
	}{
		{name: "object only", raw: `{"a":1}`, open: '{', close: '}', want: `{"a":1}`, wantOK: true},
		{name: "object with prose", raw: "Claro! {\"a\":1} Espero ter ajudado.", open: '{', close: '}', want: `{"a":1}`, wantOK: true},
		{name: "greedy to last close", raw: `x {"a":{"b":2}} y }`, open: '{', close: '}', want: `{"a":{"b":2}} y }`, wantOK: true},
		{name: "array in code fence", raw: "```json\n[\"a\",\"b\"]\n```", open: '[', close: ']', want: `["a","b"]`, wantOK: true},
		{name: "no open", raw: `"a":1}`, open: '{', close: '}', wantOK: false},
		{name: "no close", raw: `{"a":1`, open: '{', close: '}', wantOK: false},
		{name: "close before open", raw: `} text {`, open: '{', close: '}', wantOK: false},
		{name: "empty", raw: "", open: '[', close: ']', wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Span(tt.raw, tt.open, tt.close)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_Object(t *testing.T) {
	type payload struct {
		Score int      `json:"score"`
		Tags  []string `json:"tags"`
	}

	raw := "Aqui está a análise:\n```json\n{\"score\": 82, \"tags\": [\"a\", \"b\"]}\n```\nObrigado."

	got, err := Extract[payload](raw, '{', '}')
	require.NoError(t, err)

	if diff := cmp.Diff(payload{Score: 82, Tags: []string{"a", "b"}}, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_Array(t *testing.T) {
	raw := `Insights: ["Demanda cresce no verão", "Clientes buscam delivery"] fim`

	got, err := Extract[[]string](raw, '[', ']')
	require.NoError(t, err)
	assert.Equal(t, []string{"Demanda cresce no verão", "Clientes buscam delivery"}, got)
}

func TestExtract_RawMessageKeepsBytes(t *testing.T) {
	got, err := Extract[json.RawMessage]("ok {\"a\": [1, 2]} ok", '{', '}')
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,2]}`, string(got))
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "no brackets", raw: "sem json aqui", wantErr: ErrNoMatch},
		{name: "broken json", raw: `{"score": 82,}`, wantErr: ErrInvalidJSON},
		{name: "two objects joined greedily", raw: `{"a":1} e {"b":2}`, wantErr: ErrInvalidJSON},
		{name: "type mismatch", raw: `{"score": "alto"}`, wantErr: ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract[struct {
				Score int `json:"score"`
			}](tt.raw, '{', '}')
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractOrDefault(t *testing.T) {
	def := []string{"padrão"}

	t.Run("embedded array", func(t *testing.T) {
		got := ExtractOrDefault("prefix [\"x\",\"y\"] suffix", '[', ']', def)
		assert.Equal(t, []string{"x", "y"}, got)
	})

	t.Run("no brackets returns default unchanged", func(t *testing.T) {
		got := ExtractOrDefault("nothing to see", '[', ']', def)
		assert.Equal(t, def, got)
	})

	t.Run("invalid json returns default", func(t *testing.T) {
		got := ExtractOrDefault("[\"x\",]", '[', ']', def)
		assert.Equal(t, def, got)
	})

	t.Run("object", func(t *testing.T) {
		type obj struct {
			A int `json:"a"`
		}
		assert.Equal(t, obj{A: 7}, ExtractOrDefault("text {\"a\":7}", '{', '}', obj{A: -1}))
		assert.Equal(t, obj{A: -1}, ExtractOrDefault("text", '{', '}', obj{A: -1}))
	})
}
