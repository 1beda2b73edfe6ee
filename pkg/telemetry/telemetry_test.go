package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func disabledConfig() *Config {
	return &Config{
		Enabled:        false,
		ServiceName:    "layout-designer",
		ServiceVersion: "1.0.0",
		Environment:    "test",
	}
}

func TestInit_NilConfig(t *testing.T) {
	tel, err := Init(context.Background(), nil)
	require.NoError(t, err)

	require.NotNil(t, tel)
	assert.NotNil(t, tel.tracer)
	assert.NotNil(t, tel.meter)
	assert.Nil(t, tel.tracerProvider)
	assert.Nil(t, tel.meterProvider)
}

func TestInit_Disabled(t *testing.T) {
	cfg := disabledConfig()

	tel, err := Init(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotNil(t, tel.Tracer())
	assert.NotNil(t, tel.Meter())
	assert.Nil(t, tel.Resource())
	assert.Equal(t, cfg, tel.Config())
	assert.Equal(t, tel, Get())
}

func TestInit_Enabled(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cfg := &Config{
		Enabled:        true,
		ServiceName:    "layout-designer",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		CollectorAddr:  "localhost:4317",
	}

	tel, err := Init(ctx, cfg)
	require.NoError(t, err)

	assert.NotNil(t, tel.tracerProvider)
	assert.NotNil(t, tel.meterProvider)
	assert.NotNil(t, tel.resource)
	assert.Equal(t, tel, Get())

	// Zero interval and ratio fall back to defaults
	assert.Equal(t, defaultMetricInterval, cfg.MetricInterval)
	assert.Equal(t, defaultSampleRatio, cfg.SampleRatio)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer shutdownCancel()
	_ = Shutdown(shutdownCtx)
}

func TestShutdown_NilGlobal(t *testing.T) {
	globalTelemetry = nil
	assert.NoError(t, Shutdown(context.Background()))
}

func TestStartSpan_Disabled(t *testing.T) {
	_, err := Init(context.Background(), disabledConfig())
	require.NoError(t, err)

	ctx, span := StartSpan(context.Background(), "designer.layout.save")
	assert.NotNil(t, ctx)
	require.NotNil(t, span)
	span.SetAttributes(MapIDAttr("map-1"))
	span.End()
}

func TestStartSpan_NilGlobal(t *testing.T) {
	globalTelemetry = nil
	ctx := context.Background()

	newCtx, span := StartSpan(ctx, "designer.layout.save")
	assert.Equal(t, ctx, newCtx)
	assert.NotNil(t, span)
}

func TestGetMeter_NilGlobal(t *testing.T) {
	globalTelemetry = nil
	assert.NotNil(t, GetMeter())
}

func TestGetMeter_Disabled(t *testing.T) {
	tel, err := Init(context.Background(), disabledConfig())
	require.NoError(t, err)

	assert.Equal(t, tel.meter, GetMeter())
}

// Span helpers must be safe to call whether or not a span is recording.
func TestSpanHelpers_NoActiveSpan(t *testing.T) {
	ctx := context.Background()

	assert.NotNil(t, SpanFromContext(ctx))
	assert.Empty(t, GetTraceID(ctx))
	assert.Empty(t, GetSpanID(ctx))

	AddSpanEvent(ctx, "zone.placed", ZoneShapeAttr("rect"))
	SetSpanError(ctx, assert.AnError)
	SetSpanAttributes(ctx, EventIDAttr("event-1"), attribute.Int("zone.count", 4))
}

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		desc  string
	}{
		{"always", 1.0, "AlwaysOnSampler"},
		{"above one", 2.5, "AlwaysOnSampler"},
		{"never", 0, "AlwaysOffSampler"},
		{"negative", -1, "AlwaysOffSampler"},
		{"ratio", 0.25, "TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.desc, samplerFor(tt.ratio).Description())
		})
	}
}

func TestBuildResource(t *testing.T) {
	res, err := buildResource(&Config{
		ServiceName:    "layout-designer",
		ServiceVersion: "1.0.0",
		Environment:    "test",
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	attrs := make(map[string]string, len(res.Attributes()))
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "layout-designer", attrs["service.name"])
	assert.Equal(t, "1.0.0", attrs["service.version"])
	assert.Equal(t, "event-layouts", attrs["service.namespace"])
}
