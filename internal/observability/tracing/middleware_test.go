package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func installRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

func serve(handler http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestMiddleware_CreatesSpanNamedByPattern(t *testing.T) {
	exporter := installRecorder(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/businesses/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := serve(Middleware(mux), http.MethodGet, "/api/businesses/padaria-doce-pao", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "GET /api/businesses/{id}", span.Name)

	attrs := map[string]interface{}{}
	for _, a := range span.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	assert.Equal(t, int64(200), attrs["http.status_code"])
	assert.Equal(t, "GET", attrs["http.method"])
	assert.Equal(t, "/api/businesses/padaria-doce-pao", attrs["http.path"])
	assert.Len(t, rr.Header().Get("X-Trace-Id"), 32)
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	exporter := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	header := http.Header{}
	header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rr := serve(handler, http.MethodGet, "/health", header)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", rr.Header().Get("X-Trace-Id"))
}

func TestMiddleware_ErrorStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantError bool
	}{
		{name: "5xx marks error", status: http.StatusInternalServerError, wantError: true},
		{name: "4xx is not an error", status: http.StatusNotFound, wantError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := installRecorder(t)
			handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			serve(handler, http.MethodPost, "/api/analysis", nil)

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)

			hasErrorAttr := false
			for _, a := range spans[0].Attributes {
				if a.Key == "error" && a.Value.AsBool() {
					hasErrorAttr = true
				}
			}
			assert.Equal(t, tt.wantError, hasErrorAttr)
			if tt.wantError {
				assert.Equal(t, codes.Error, spans[0].Status.Code)
			}
		})
	}
}

func TestInit(t *testing.T) {
	prevProp := otel.GetTextMapPropagator()
	defer func() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		otel.SetTextMapPropagator(prevProp)
	}()

	exporter := tracetest.NewInMemoryExporter()
	shutdown := Init("localbiz-insights-test", sdktrace.WithSyncer(exporter))

	_, span := GetTracer().Start(context.Background(), "probe")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "probe", spans[0].Name)
	require.NoError(t, shutdown(context.Background()))
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, rw.statusCode)

	rw.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
}
