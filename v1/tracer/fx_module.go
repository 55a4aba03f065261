package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
)

// FXModule wires OpenTelemetry tracing into the proxy. It provides the
// Tracer used by v1/batcher to link a flush span to every request folded
// into it, and registers a shutdown hook that flushes pending spans to the
// OTLP collector before the process exits.
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "embed-batch-proxy", Enabled: true}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle flushes and shuts down the tracer provider on
// application stop. When tracing is disabled, NewClient returns a Tracer
// with a nil provider and this hook is a no-op.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if t.tracer == nil {
				return nil
			}
			log.Info("shutting down tracer, flushing pending spans", nil, nil)
			return t.tracer.Shutdown(ctx)
		},
	})
}
