package telemetry

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := New(context.Background())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Enabled() {
		t.Error("expected disabled provider")
	}
	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNew_EnabledWithEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	p, err := New(context.Background())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Enabled() {
		t.Error("expected enabled provider")
	}
	// Nothing was recorded, so shutdown does not need the collector.
	_ = p.Shutdown(context.Background())
}

func TestFromSDK_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := FromSDK(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	_, span := p.Tracer().Start(context.Background(), "overlay.open")
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 || ended[0].Name() != "overlay.open" {
		t.Fatalf("expected one overlay.open span, got %d", len(ended))
	}
	if got := ended[0].InstrumentationScope().Name; got != InstrumentationName {
		t.Errorf("scope name: got %q", got)
	}
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	if p.Enabled() {
		t.Error("nil provider must be disabled")
	}
	if p.Tracer() == nil {
		t.Error("nil provider must still hand out a tracer")
	}
}
