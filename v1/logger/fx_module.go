package logger

import (
	"context"
	"go.uber.org/fx"
)

// FXModule provides *Logger to the proxy's dependency graph and registers
// its shutdown hook. Every other module (batcher, handler, app) takes
// *Logger as a constructor parameter rather than constructing its own.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A logger.Config instance must be available in the dependency injection container
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes buffered log entries on application stop,
// so a flush-failure log line emitted right before shutdown isn't lost.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync() // flushes any buffered logs
		},
	})
}
