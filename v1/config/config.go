package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// OversizePolicy controls how the batcher handles a single request whose
// inputs alone exceed MaxBatchSize. See DESIGN.md for the tradeoff.
type OversizePolicy string

const (
	// OversizeAdmitAlone lets an oversized item form its own flush unit.
	OversizeAdmitAlone OversizePolicy = "admit-alone"
	// OversizeReject fails an oversized item immediately with the batcher's
	// ErrOversizeRejected.
	OversizeReject OversizePolicy = "reject"
)

// Default values for configuration, mirroring the teacher package's
// Default* constant convention.
const (
	DefaultMaxBatchSize          = 8
	DefaultMaxWaitTime           = 500 * time.Millisecond
	DefaultAppPort               = 8080
	DefaultMetricsAddress        = ":9090"
	DefaultLogLevel              = "info"
	DefaultSubmissionQueueFactor = 4
	DefaultOversizePolicy        = OversizeAdmitAlone
	DefaultUpstreamTimeout       = 2 * time.Second
)

// Config is the immutable-after-start configuration for the proxy.
type Config struct {
	// MaxBatchSize bounds the sum of input counts across one upstream call.
	MaxBatchSize int

	// MaxWaitTime bounds how long the oldest queued item waits before a
	// deadline-triggered flush.
	MaxWaitTime time.Duration

	// InferenceServiceHost and InferenceServicePort compose UpstreamURL.
	InferenceServiceHost string
	InferenceServicePort int

	// UpstreamURL is the base URL of the upstream inference service
	// (no trailing path); the Upstream Client appends /embed.
	UpstreamURL string

	// UpstreamTimeout bounds a single upstream HTTP call.
	UpstreamTimeout time.Duration

	// AppPort is the bind port for the /embed and /healthz HTTP server.
	AppPort int

	// MetricsAddress is the bind address for the /metrics HTTP server.
	MetricsAddress string

	// LogLevel controls the logger's minimum severity.
	LogLevel string

	// EnableTracing turns on OpenTelemetry span emission and log/trace
	// correlation.
	EnableTracing bool

	// OTLPEndpoint is the OTLP/HTTP collector endpoint. When it is empty and
	// EnableTracing is true, the tracer exports to tracer.DefaultOTLPEndpoint.
	OTLPEndpoint string

	// SubmissionQueueFactor sizes the bounded submission channel as
	// MaxBatchSize * SubmissionQueueFactor.
	SubmissionQueueFactor int

	// OversizePolicy controls handling of single items whose inputs alone
	// exceed MaxBatchSize.
	OversizePolicy OversizePolicy
}

// NewConfig reads configuration from environment variables, applying
// defaults for anything unset, and validates the result.
func NewConfig() (*Config, error) {
	cfg := &Config{
		MaxBatchSize:          envInt("MAX_BATCH_SIZE", DefaultMaxBatchSize),
		MaxWaitTime:           envMillis("MAX_WAIT_TIME", DefaultMaxWaitTime),
		InferenceServiceHost:  os.Getenv("INFERENCE_SERVICE_HOST"),
		InferenceServicePort:  envInt("INFERENCE_SERVICE_PORT", 0),
		AppPort:               envInt("APP_PORT", DefaultAppPort),
		MetricsAddress:        envString("METRICS_ADDRESS", DefaultMetricsAddress),
		LogLevel:              envString("ZAP_LOGGER_LEVEL", DefaultLogLevel),
		EnableTracing:         envBool("LOGGER_ENABLE_TRACING", false),
		OTLPEndpoint:          os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SubmissionQueueFactor: envInt("SUBMISSION_QUEUE_FACTOR", DefaultSubmissionQueueFactor),
		OversizePolicy:        OversizePolicy(envString("OVERSIZE_POLICY", string(DefaultOversizePolicy))),
		UpstreamTimeout:       DefaultUpstreamTimeout,
	}

	cfg.UpstreamURL = fmt.Sprintf("http://%s:%d", cfg.InferenceServiceHost, cfg.InferenceServicePort)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate ensures required fields are present and numeric fields respect
// the invariants from §3 of the specification.
func (c *Config) Validate() error {
	if c.InferenceServiceHost == "" {
		return fmt.Errorf("config: missing INFERENCE_SERVICE_HOST")
	}
	if c.InferenceServicePort <= 0 {
		return fmt.Errorf("config: INFERENCE_SERVICE_PORT must be a positive integer")
	}
	if c.MaxBatchSize <= 0 {
		return fmt.Errorf("config: MAX_BATCH_SIZE must be a positive integer, got %d", c.MaxBatchSize)
	}
	if c.MaxWaitTime < 0 {
		return fmt.Errorf("config: MAX_WAIT_TIME must be non-negative, got %s", c.MaxWaitTime)
	}
	if c.AppPort <= 0 {
		return fmt.Errorf("config: APP_PORT must be a positive integer, got %d", c.AppPort)
	}
	if c.SubmissionQueueFactor <= 0 {
		return fmt.Errorf("config: SUBMISSION_QUEUE_FACTOR must be a positive integer, got %d", c.SubmissionQueueFactor)
	}
	switch c.OversizePolicy {
	case OversizeAdmitAlone, OversizeReject:
	default:
		return fmt.Errorf("config: OVERSIZE_POLICY must be %q or %q, got %q", OversizeAdmitAlone, OversizeReject, c.OversizePolicy)
	}
	return nil
}

// SubmissionQueueCapacity returns the bounded submission channel capacity
// derived from MaxBatchSize and SubmissionQueueFactor.
func (c *Config) SubmissionQueueCapacity() int {
	return c.MaxBatchSize * c.SubmissionQueueFactor
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envMillis(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
