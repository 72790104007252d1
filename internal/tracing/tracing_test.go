package tracing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pathways/internal/catalog"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func restoreProvider(t *testing.T) {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func TestSetup_Disabled(t *testing.T) {
	restoreProvider(t)
	prev := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), "", "pathways")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, prev, otel.GetTracerProvider(), "provider untouched")
}

func TestSetup_Enabled(t *testing.T) {
	for _, endpoint := range []string{"localhost:4318", "http://localhost:4318"} {
		t.Run(endpoint, func(t *testing.T) {
			restoreProvider(t)

			shutdown, err := Setup(context.Background(), endpoint, "pathways-test")
			require.NoError(t, err)
			_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
			assert.True(t, ok)
			// No spans were recorded, so shutdown does not reach the endpoint.
			assert.NoError(t, shutdown(context.Background()))
		})
	}
}

func TestCatalogLoadSpans(t *testing.T) {
	restoreProvider(t)
	exp := tracetest.NewInMemoryExporter()
	provider := NewProvider(exp, "")
	otel.SetTracerProvider(provider)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.json"),
		[]byte(`{"name":"Alpha","years":{}}`), 0o644))

	_, err := catalog.Load(context.Background(), catalog.Options{Dir: dir, Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.NoError(t, provider.ForceFlush(context.Background()))

	var names []string
	for _, s := range exp.GetSpans() {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{"catalog.Load", "catalog.LoadPathway"}, names)
	require.NoError(t, provider.Shutdown(context.Background()))
}
