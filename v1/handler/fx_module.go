package handler

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/batcher"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/metrics"
)

// FXModule wires the HTTP handler into Fx. It provides *Handler, built
// against the concrete *batcher.Batcher as both Submitter and
// HealthReporter.
var FXModule = fx.Module(
	"handler",

	fx.Provide(newHandler),
)

func newHandler(b *batcher.Batcher, log *logger.Logger, collector metrics.Collector) *Handler {
	return New(b, b, log, collector)
}
