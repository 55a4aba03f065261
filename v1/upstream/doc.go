// Package upstream provides the client used by the batching coordinator to
// issue one HTTP call per flushed batch against the upstream text-embedding
// inference service.
//
// # Overview
//
// The package exposes a single entrypoint, Client, which hides the HTTP
// transport, request shape, and response decoding from v1/batcher.
//
//	client := upstream.NewClient(cfg)
//	embeddings, err := client.Embed(ctx, []string{"a", "b", "c"})
//
// A successful call returns one embedding per input, in the same order. A
// failed call returns one of the typed errors declared in errors.go so
// v1/batcher can classify the failure (the kind label of its upstream error
// metric) without inspecting strings; v1/handler answers every upstream
// failure with 502.
//
// # Configuration
//
//	INFERENCE_SERVICE_HOST   # upstream host, combined into UpstreamURL by v1/config
//	INFERENCE_SERVICE_PORT   # upstream port
//
// No retries are performed; callers that need resilience compose a decorator
// around the Client interface.
package upstream
