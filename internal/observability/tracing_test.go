package observability

import (
	"context"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

const inboundTraceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

func TestNewTracing_ContinuesInboundTrace(t *testing.T) {
	// Arrange
	logger, _ := test.NewNullLogger()
	exporter := tracetest.NewInMemoryExporter()
	tracing, err := NewTracing(context.Background(), TracingConfig{ServiceName: "x-affiliates"}, logger,
		sdktrace.WithSyncer(exporter))
	require.NoError(t, err)
	defer tracing.Shutdown(context.Background())

	inbound := http.Header{}
	inbound.Set("traceparent", inboundTraceparent)

	// Act
	ctx := tracing.Propagator.Extract(context.Background(), propagation.HeaderCarrier(inbound))
	ctx, span := tracing.TracerProvider.Tracer("test").Start(ctx, "dashboard")
	outbound := http.Header{}
	tracing.Propagator.Inject(ctx, propagation.HeaderCarrier(outbound))
	span.End()

	// Assert
	spanCtx := trace.SpanContextFromContext(ctx)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spanCtx.TraceID().String())
	assert.Contains(t, outbound.Get("traceparent"), "4bf92f3577b34da6a3ce929d0e0e4736")
	assert.NotContains(t, outbound.Get("traceparent"), "00f067aa0ba902b7")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "dashboard", spans[0].Name)
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())
}

func TestNewTracing_NoEndpointNeedsNoCollector(t *testing.T) {
	logger, hook := test.NewNullLogger()

	tracing, err := NewTracing(context.Background(), TracingConfig{ServiceName: "x-affiliates"}, logger)

	require.NoError(t, err)
	assert.NotNil(t, tracing.TracerProvider)
	assert.Empty(t, hook.AllEntries())
	assert.NoError(t, tracing.Shutdown(context.Background()))
}
