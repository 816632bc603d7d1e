package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitOtel_DisabledWithoutEndpoint(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := InitOtel(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.Equal(t, before, otel.GetTracerProvider(), "global provider must not change")
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitOtel_InstallsProviders(t *testing.T) {
	// gRPC connects lazily, so no collector is needed to build the pipeline.
	shutdown, err := InitOtel(context.Background(), "127.0.0.1:4317")
	require.NoError(t, err)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok, "SDK tracer provider expected")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Flushing to the absent collector fails fast on the cancelled context.
	_ = shutdown(ctx)
}
