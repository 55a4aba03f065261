// Package app is the composition root: it wires config, logger, metrics,
// tracer, the upstream client, the batching coordinator, and the HTTP
// handler into a single go.uber.org/fx application, and owns the lifecycle
// of the public HTTP server (POST /embed, GET /healthz).
//
//	fx.New(app.Module).Run()
//
// Graceful shutdown races the HTTP server against the batching coordinator:
// both are torn down when the process receives SIGINT/SIGTERM (handled by
// fx's own signal listener). RegisterServerLifecycle's OnStop hook cancels
// the coordinator's Run, which flushes the remaining queue and waits for any
// in-flight upstream calls to drain before returning.
package app
