package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer wraps the OpenTelemetry SDK's TracerProvider so it can be injected
// through Fx and shut down cleanly on application stop.
type Tracer struct {
	tracer *sdktrace.TracerProvider
}

// NewClient builds a Tracer from cfg. When cfg.Enabled is false, it installs
// a no-op global provider and returns a Tracer with a nil provider, so
// RegisterTracerLifecycle skips shutdown.
func NewClient(cfg Config) (*Tracer, error) {
	if !cfg.Enabled {
		otel.SetTracerProvider(oteltrace.NewNoopTracerProvider())
		return &Tracer{}, nil
	}

	endpoint := cfg.OTLPEndpoint
	if endpoint == "" {
		endpoint = DefaultOTLPEndpoint
	}

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("tracer: creating OTLP exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tracer: building resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Tracer{tracer: provider}, nil
}

// Tracer returns the global tracer used to start spans for name.
func (t *Tracer) Tracer(name string) oteltrace.Tracer {
	return otel.Tracer(name)
}
