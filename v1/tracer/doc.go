// Package tracer configures OpenTelemetry distributed tracing for the
// batching proxy and integrates it with the Fx dependency injection
// framework.
//
// # Direct Usage (Without FX)
//
//	cfg := tracer.Config{
//		ServiceName:  "embed-batch-proxy",
//		Enabled:      true,
//		OTLPEndpoint: "otel-collector:4318",
//	}
//	t, err := tracer.NewClient(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = t.Tracer("embed-batch-proxy")
//
// # FX Module Integration
//
//	app := fx.New(
//		tracer.FXModule,
//		fx.Provide(func() tracer.Config {
//			return tracer.Config{ServiceName: "embed-batch-proxy", Enabled: true}
//		}),
//	)
//
// # Configuration
//
//	LOGGER_ENABLE_TRACING=true                 # Enable span/trace correlation in logs
//	OTEL_EXPORTER_OTLP_ENDPOINT=localhost:4318 # OTLP/HTTP collector endpoint
package tracer
