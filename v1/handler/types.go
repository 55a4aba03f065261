package handler

import (
	"context"
	"time"
)

// Submitter is the batching coordinator's public contract as seen by the
// HTTP layer.
type Submitter interface {
	Submit(ctx context.Context, inputs []string, arrivedAt ...time.Time) ([][]float64, error)
}

// HealthReporter backs the /healthz liveness probe.
type HealthReporter interface {
	Running() bool
}

type embedRequest struct {
	Inputs []string `json:"inputs"`
}

type errorResponse struct {
	Error string `json:"error"`
}
