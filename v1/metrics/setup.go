package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing the batching proxy's metrics.
//
// This structure provides the components needed to register metrics
// collectors and serve them via the /metrics HTTP endpoint for Prometheus
// scraping.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	// Batching coordinator metrics.
	batchSize        *prometheus.HistogramVec
	flushesTotal     *prometheus.CounterVec
	queueDepth       prometheus.Gauge
	inFlightFlushes  prometheus.Gauge
	upstreamDuration prometheus.Histogram
	upstreamErrors   *prometheus.CounterVec
	handlerStatus    *prometheus.CounterVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers default system
// collectors, wraps all metrics with a constant `service` label, and
// creates an HTTP server exposing the /metrics endpoint.
//
// Example:
//
//	cfg := metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "embed-batch-proxy",
//	    EnableDefaultCollectors: true,
//	}
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.batchSize = createHistogramVec(
		"batch_size",
		"Number of inputs in each upstream batch call",
		[]string{"trigger"},
		[]float64{1, 2, 4, 8, 16, 32, 64, 128},
	)
	m.flushesTotal = createCounterVec(
		"flushes_total",
		"Total number of flushes, labeled by trigger (size, oversize, deadline, shutdown)",
		[]string{"trigger"},
	)
	m.queueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "queue_depth_inputs",
		Help: "Sum of input counts currently queued and not yet flushed",
	})
	m.inFlightFlushes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "in_flight_flushes",
		Help: "Number of upstream batch calls currently in flight",
	})
	m.upstreamDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "upstream_call_duration_seconds",
		Help:    "Duration of upstream embedding calls in seconds",
		Buckets: prometheus.DefBuckets,
	})
	m.upstreamErrors = createCounterVec(
		"upstream_errors_total",
		"Total number of upstream call failures, labeled by kind",
		[]string{"kind"},
	)
	m.handlerStatus = createCounterVec(
		"handler_responses_total",
		"Total number of /embed and /healthz responses, labeled by HTTP status",
		[]string{"status"},
	)

	wrappedRegistry.MustRegister(
		m.batchSize,
		m.flushesTotal,
		m.queueDepth,
		m.inFlightFlushes,
		m.upstreamDuration,
		m.upstreamErrors,
		m.handlerStatus,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	m.Server = server
	return m
}
