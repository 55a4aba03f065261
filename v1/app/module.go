package app

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/batcher"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/config"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/handler"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/metrics"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/tracer"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/upstream"
)

// Module is the full fx.Options tree for the proxy: configuration,
// observability, the upstream client, the batching coordinator, the HTTP
// handler, and the errgroup-coupled HTTP server / batcher lifecycle.
var Module = fx.Options(
	fx.Provide(
		config.NewConfig,
		loggerConfigFromApp,
		metricsConfigFromApp,
		tracerConfigFromApp,
	),

	logger.FXModule,
	metrics.FXModule,
	tracer.FXModule,
	upstream.FXModule,
	batcher.FXModule,
	handler.FXModule,

	fx.Invoke(RegisterServerLifecycle),
)

func loggerConfigFromApp(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:         logger.Level(cfg.LogLevel),
		ServiceName:   serviceName,
		EnableTracing: cfg.EnableTracing,
	}
}

func metricsConfigFromApp(cfg *config.Config) metrics.Config {
	return metrics.Config{
		Address:                 cfg.MetricsAddress,
		ServiceName:             serviceName,
		EnableDefaultCollectors: true,
	}
}

func tracerConfigFromApp(cfg *config.Config) tracer.Config {
	return tracer.Config{
		ServiceName:  serviceName,
		Enabled:      cfg.EnableTracing,
		OTLPEndpoint: cfg.OTLPEndpoint,
	}
}

const serviceName = "embed-batch-proxy"
