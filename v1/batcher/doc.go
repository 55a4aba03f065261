// Package batcher implements the auto-batching coordinator at the heart of
// the proxy: a single long-lived goroutine that accepts embedding requests
// from many concurrent HTTP handlers, groups their inputs into upstream
// calls bounded by size and wait time, and fans results back to exactly the
// callers whose items were in the flushed batch.
//
// # Overview
//
//	b := batcher.New(cfg, upstreamClient, metricsCollector, log, tracer)
//	go b.Run(ctx)
//	embeddings, err := b.Submit(ctx, []string{"a", "b"})
//
// Submit blocks the calling goroutine until its item's batch has been
// flushed and answered (or the request context is cancelled). All pending
// queue state — the queue itself, the arrival time of the oldest item, and
// the deadline timer — is private to the coordinator goroutine spawned by
// Run and is never touched from Submit's goroutine; handlers communicate
// with the coordinator exclusively over a bounded channel.
//
// # Shutdown
//
// Cancelling the context passed to Run triggers a shutdown flush: any
// items still queued are flushed immediately, in-flight upstream calls are
// allowed to finish, and Run returns once they have. Submit calls racing
// with shutdown either complete normally or receive BatcherUnavailable.
package batcher
