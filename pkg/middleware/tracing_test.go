package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer installs an in-memory span exporter and returns it along
// with a cleanup that restores the previous global tracer provider.
func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})

	return exporter
}

func tracedRouter(pattern string, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(Tracing("storefront"))
	r.Get(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func TestTracing_CreatesSpanNamedByRoutePattern(t *testing.T) {
	exporter := setupTestTracer(t)

	handler := tracedRouter("/api/v1/products/{id}", http.StatusOK)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/p-001", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	spans := exporter.GetSpans()
	require.NotEmpty(t, spans)
	assert.Equal(t, "GET /api/v1/products/{id}", spans[0].Name)
}

func TestTracing_RecordsStatusCode(t *testing.T) {
	exporter := setupTestTracer(t)

	handler := tracedRouter("/missing", http.StatusNotFound)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	spans := exporter.GetSpans()
	require.NotEmpty(t, spans)

	found := false
	for _, attr := range spans[0].Attributes {
		if string(attr.Key) == "http.status_code" {
			assert.EqualValues(t, 404, attr.Value.AsInt64())
			found = true
			break
		}
	}
	assert.True(t, found, "http.status_code attribute not found on span")
}

func TestTracing_ServerError_SetsSpanError(t *testing.T) {
	exporter := setupTestTracer(t)

	handler := tracedRouter("/error", http.StatusInternalServerError)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/error", nil))

	spans := exporter.GetSpans()
	require.NotEmpty(t, spans)
	assert.EqualValues(t, 1, spans[0].Status.Code) // codes.Error
}

func TestTracing_PropagatesInboundTraceContext(t *testing.T) {
	exporter := setupTestTracer(t)

	handler := tracedRouter("/traced", http.StatusOK)
	req := httptest.NewRequest(http.MethodGet, "/traced", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	require.NotEmpty(t, spans)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.NotEmpty(t, rec.Header().Get("traceparent"), "response missing traceparent header")
}
