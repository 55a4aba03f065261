// Package logger provides structured logging for the batching proxy,
// wrapping go.uber.org/zap with a small, stable API and optional
// OpenTelemetry trace/span correlation.
//
// # Architecture
//
//   - Logger struct: wraps a configured *zap.Logger
//   - NewLoggerClient constructor: builds a *Logger from Config
//   - FX module: provides *Logger for dependency injection
//
// Core Features:
//   - Structured logging with key-value fields (Fields, a named
//     map[string]interface{} type)
//   - Debug/Info/Warn/Error plus *WithContext variants
//   - Automatic trace_id/span_id extraction from context when tracing is
//     enabled
//   - JSON encoding with ISO8601 timestamps, pid/service default fields
//
// # Direct Usage (Without FX)
//
//	import "github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		ServiceName:   "embed-batch-proxy",
//		EnableTracing: true,
//	})
//
//	log.Info("batch flushed", nil, logger.Fields{"batch_size": 8})
//	log.InfoWithContext(ctx, "flush succeeded", nil, logger.Fields{"trigger": "size"})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule, // Provides *Logger
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info, ServiceName: "embed-batch-proxy"}
//		}),
//		fx.Invoke(func(log *logger.Logger) {
//			log.Info("service started", nil, nil)
//		}),
//	)
//	app.Run()
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true      # extract trace_id/span_id in *WithContext methods
//
// # Thread Safety
//
// All Logger methods are safe for concurrent use by multiple goroutines.
package logger
