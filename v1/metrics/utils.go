package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ObserveBatch records the size of a flushed batch, labeled by which trigger
// fired the flush (size, oversize, deadline, shutdown).
func (m *Metrics) ObserveBatch(trigger string, size int) {
	m.batchSize.WithLabelValues(trigger).Observe(float64(size))
	m.flushesTotal.WithLabelValues(trigger).Inc()
}

// SetQueueDepth reports the current sum of input counts waiting in the
// pending queue.
func (m *Metrics) SetQueueDepth(depth int) {
	m.queueDepth.Set(float64(depth))
}

// IncInFlightFlushes increments the in-flight upstream call gauge.
func (m *Metrics) IncInFlightFlushes() {
	m.inFlightFlushes.Inc()
}

// DecInFlightFlushes decrements the in-flight upstream call gauge.
func (m *Metrics) DecInFlightFlushes() {
	m.inFlightFlushes.Dec()
}

// RecordUpstreamDuration records how long an upstream call took.
func (m *Metrics) RecordUpstreamDuration(start time.Time) {
	m.upstreamDuration.Observe(time.Since(start).Seconds())
}

// IncUpstreamError increments the upstream error counter for a given kind
// (transport, http_status, decode, shape_mismatch, unknown).
func (m *Metrics) IncUpstreamError(kind string) {
	m.upstreamErrors.WithLabelValues(kind).Inc()
}

// IncHandlerResponse increments the handler response counter for a given
// HTTP status code.
func (m *Metrics) IncHandlerResponse(status int) {
	m.handlerStatus.WithLabelValues(statusLabel(status)).Inc()
}

func statusLabel(status int) string {
	switch status {
	case 200:
		return "200"
	case 400:
		return "400"
	case 429:
		return "429"
	case 502:
		return "502"
	case 503:
		return "503"
	default:
		return "other"
	}
}

func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}
