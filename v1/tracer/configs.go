package tracer

// Config configures the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName is attached to every span as the "service.name" resource attribute.
	ServiceName string

	// Enabled controls whether a real OTLP exporter is wired up. When false,
	// NewClient returns a Tracer with a no-op provider.
	Enabled bool

	// OTLPEndpoint is the host:port of the OTLP/HTTP collector, e.g. "otel-collector:4318".
	OTLPEndpoint string
}

const (
	// DefaultOTLPEndpoint is used when OTLPEndpoint is left empty while tracing is enabled.
	DefaultOTLPEndpoint = "localhost:4318"
)
