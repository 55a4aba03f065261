package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/batcher"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/metrics"
)

// Handler serves the proxy's public HTTP surface.
type Handler struct {
	submitter Submitter
	health    HealthReporter
	log       *logger.Logger
	metrics   metrics.Collector
}

// New constructs a Handler.
func New(submitter Submitter, health HealthReporter, log *logger.Logger, collector metrics.Collector) *Handler {
	return &Handler{submitter: submitter, health: health, log: log, metrics: collector}
}

// Routes registers the handler's endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /embed", h.Embed)
	mux.HandleFunc("GET /healthz", h.Healthz)
}

// Embed handles POST /embed.
func (h *Handler) Embed(w http.ResponseWriter, r *http.Request) {
	var req embedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.reject(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if len(req.Inputs) == 0 {
		h.reject(w, http.StatusBadRequest, "inputs must be a non-empty array of strings")
		return
	}

	embeddings, err := h.submitter.Submit(r.Context(), req.Inputs)
	if err != nil {
		h.handleSubmitError(w, err)
		return
	}

	h.respond(w, http.StatusOK, embeddings)
}

func (h *Handler) handleSubmitError(w http.ResponseWriter, err error) {
	switch {
	case batcher.IsOverloaded(err):
		h.log.Warn("rejecting request: submission queue full", err, nil)
		h.reject(w, http.StatusTooManyRequests, "batching queue is full, try again shortly")
	case batcher.IsBatcherUnavailable(err):
		h.log.Warn("rejecting request: coordinator unavailable", err, nil)
		h.reject(w, http.StatusServiceUnavailable, "service is shutting down")
	case batcher.IsOversizeRejected(err):
		h.log.Debug("rejecting request: oversized under reject policy", err, nil)
		h.reject(w, http.StatusBadRequest, "inputs exceed the maximum batch size")
	case batcher.IsUpstreamError(err):
		h.log.Error("upstream call failed", err, nil)
		h.reject(w, http.StatusBadGateway, "upstream embedding service failed")
	default:
		h.log.Error("submit failed with an unrecognized error", err, nil)
		h.reject(w, http.StatusServiceUnavailable, "internal error")
	}
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if !h.health.Running() {
		h.reject(w, http.StatusServiceUnavailable, "batching coordinator is not running")
		return
	}
	h.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) reject(w http.ResponseWriter, status int, message string) {
	h.metrics.IncHandlerResponse(status)
	h.respond(w, status, errorResponse{Error: message})
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	if status == http.StatusOK {
		h.metrics.IncHandlerResponse(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
