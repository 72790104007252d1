// Package tracing installs the global OpenTelemetry tracer provider.
//
// Export is off unless an OTLP endpoint is configured; the packages that
// start spans use otel.Tracer and fall back to the no-op provider.
package tracing

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// ShutdownFunc flushes pending spans and stops the provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup exports spans to endpoint over OTLP/HTTP and installs the provider
// globally. An empty endpoint leaves tracing disabled.
func Setup(ctx context.Context, endpoint, serviceName string) (ShutdownFunc, error) {
	if endpoint == "" {
		return noopShutdown, nil
	}

	opt := otlptracehttp.WithEndpoint(endpoint)
	if strings.Contains(endpoint, "://") {
		opt = otlptracehttp.WithEndpointURL(endpoint)
	}
	exporter, err := otlptracehttp.New(ctx, opt, otlptracehttp.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("creating otlp exporter: %w", err)
	}

	provider := NewProvider(exporter, serviceName)
	otel.SetTracerProvider(provider)
	return provider.Shutdown, nil
}

// NewProvider batches spans into exporter under the given service name.
func NewProvider(exporter sdktrace.SpanExporter, serviceName string) *sdktrace.TracerProvider {
	if serviceName == "" {
		serviceName = "pathways"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
}
