// Package handler implements the thin HTTP layer in front of the batching
// coordinator: decode the request body, call Submit, encode the response.
//
// POST /embed accepts {"inputs": [string, ...]} and responds with 200 and
// a JSON array of embedding vectors on success, 400 on a malformed body,
// 429 when the coordinator's submission queue is full, 502 on an upstream
// failure, and 503 when the coordinator is not running.
//
// GET /healthz reports 200 while the batching coordinator is running and
// 503 once shutdown has begun.
package handler
