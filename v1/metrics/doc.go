// Package metrics provides Prometheus-based monitoring and metrics collection
// for the auto-batching embedding proxy.
//
// The metrics package is designed to provide a standardized observability
// approach with a configurable HTTP endpoint for metrics exposure, automatic
// runtime instrumentation, and integration with the Fx dependency injection
// framework.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Collector interface: Defines the contract for batching-proxy metric operations
//   - Metrics struct: Concrete implementation of the Collector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides both *Metrics and the Collector interface for dependency injection
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Integration with go.uber.org/fx for automatic lifecycle management
//   - Automatic registration of Go runtime and process-level metrics
//   - Batch size, flush trigger, queue depth, in-flight flush, and upstream
//     call metrics purpose-built for the batching coordinator
//   - Service name labelling for multi-service observability
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create metrics directly:
//
//	import "github.com/Aleph-Alpha/embed-batch-proxy/v1/metrics"
//
//	cfg := metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "embed-batch-proxy",
//	}
//
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
//	m.ObserveBatch("size", 32)
//	m.SetQueueDepth(4)
//	defer m.RecordUpstreamDuration(time.Now())
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule which provides
// both the concrete type and interface:
//
//	import (
//		"go.uber.org/fx"
//		"github.com/Aleph-Alpha/embed-batch-proxy/v1/metrics"
//		"github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
//	)
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule, // Provides *Metrics and metrics.Collector
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{
//				Address:                 ":9090",
//				EnableDefaultCollectors: true,
//				ServiceName:             "embed-batch-proxy",
//			}
//		}),
//		fx.Invoke(func(m metrics.Collector) {
//			m.SetQueueDepth(0)
//		}),
//	)
//	app.Run()
//
// # Configuration
//
// v1/app reads the /metrics bind address from the environment and passes
// the rest of Config in code:
//
//	METRICS_ADDRESS=:9090   # Bind address for /metrics endpoint
//
// EnableDefaultCollectors and ServiceName are not environment-configurable;
// v1/app's metricsConfigFromApp hardcodes EnableDefaultCollectors to true
// and ServiceName to the proxy's fixed service name.
//
// # Default Collectors
//
// When EnableDefaultCollectors is true, the package automatically registers
// the following collectors:
//   - Go runtime metrics (goroutines, GC stats, heap usage)
//   - Process metrics (CPU time, memory, file descriptors)
//   - Build info metrics
//
// # Batching Metrics
//
// batch_size (histogram, labeled by trigger) and flushes_total (counter,
// labeled by trigger) record every flush of the batching coordinator, where
// trigger is one of "size", "oversize", "deadline", or "shutdown".
// queue_depth_inputs and in_flight_flushes are gauges tracking the current
// pending-queue size and the number of concurrent upstream calls.
// upstream_call_duration_seconds and upstream_errors_total (labeled by kind)
// cover the upstream client, and handler_responses_total (labeled by status)
// covers the HTTP handler.
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
