package metrics

import "time"

// Collector abstracts the batching proxy's metric operations so that
// v1/batcher and v1/handler can depend on an interface rather than the
// concrete Prometheus-backed *Metrics.
//
// This interface is implemented by the concrete *Metrics type.
type Collector interface {
	// ObserveBatch records the size of a flushed batch, labeled by trigger.
	ObserveBatch(trigger string, size int)

	// SetQueueDepth reports the current sum of queued input counts.
	SetQueueDepth(depth int)

	// IncInFlightFlushes / DecInFlightFlushes track concurrent upstream calls.
	IncInFlightFlushes()
	DecInFlightFlushes()

	// RecordUpstreamDuration records how long an upstream call took.
	RecordUpstreamDuration(start time.Time)

	// IncUpstreamError increments the upstream error counter for a kind.
	IncUpstreamError(kind string)

	// IncHandlerResponse increments the handler response counter for a status.
	IncHandlerResponse(status int)
}
