package batcher

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/config"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/metrics"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/tracer"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/upstream"
)

// FXModule provides *Batcher to the proxy's dependency graph.
//
// It deliberately does not register a lifecycle hook of its own: Run must
// race the HTTP server under one errgroup.Group so an unexpected exit on
// either side tears down the other instead of leaving a half-dead process.
// v1/app.RegisterServerLifecycle owns that coupling.
var FXModule = fx.Module(
	"batcher",

	fx.Provide(newBatcher),
)

func newBatcher(cfg *config.Config, upstreamClient upstream.Client, collector metrics.Collector, log *logger.Logger, t *tracer.Tracer) *Batcher {
	return New(cfg, upstreamClient, collector, log, t.Tracer("batcher"))
}
