// Package config loads and validates the environment-driven configuration
// for the auto-batching embedding proxy.
//
// # Overview
//
// Configuration is sourced entirely from environment variables and
// constructed by:
//
//	cfg, err := config.NewConfig()
//
// Required variables:
//
//   - INFERENCE_SERVICE_HOST / INFERENCE_SERVICE_PORT
//     Compose into the upstream base URL the Upstream Client calls.
//
// Optional variables (with package defaults):
//
//   - MAX_BATCH_SIZE (default 8)
//   - MAX_WAIT_TIME milliseconds (default 500)
//   - APP_PORT (default 8080)
//   - METRICS_ADDRESS (default :9090)
//   - ZAP_LOGGER_LEVEL (default info)
//   - LOGGER_ENABLE_TRACING (default false)
//   - OTEL_EXPORTER_OTLP_ENDPOINT (default empty; with tracing enabled the
//     tracer then exports to localhost:4318)
//   - SUBMISSION_QUEUE_FACTOR (default 4)
//   - OVERSIZE_POLICY (default admit-alone; admit-alone|reject)
//
// Configuration correctness is verified at construction time via Validate,
// so a malformed environment fails fast during bootstrap rather than at the
// first request.
package config
