package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/batcher"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/handler"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
)

type stubSubmitter struct {
	result [][]float64
	err    error
}

func (s stubSubmitter) Submit(ctx context.Context, inputs []string, arrivedAt ...time.Time) ([][]float64, error) {
	return s.result, s.err
}

type stubHealth struct{ running bool }

func (s stubHealth) Running() bool { return s.running }

type noopCollector struct{}

func (noopCollector) ObserveBatch(string, int)         {}
func (noopCollector) SetQueueDepth(int)                {}
func (noopCollector) IncInFlightFlushes()              {}
func (noopCollector) DecInFlightFlushes()              {}
func (noopCollector) RecordUpstreamDuration(time.Time) {}
func (noopCollector) IncUpstreamError(string)          {}
func (noopCollector) IncHandlerResponse(int)           {}

func testLogger() *logger.Logger {
	return logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "handler-test"})
}

func doEmbed(t *testing.T, h *handler.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/embed", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Embed(rec, req)
	return rec
}

func TestHandler_Embed_Success(t *testing.T) {
	h := handler.New(stubSubmitter{result: [][]float64{{1, 2}, {3, 4}}}, stubHealth{running: true}, testLogger(), noopCollector{})

	rec := doEmbed(t, h, `{"inputs":["a","b"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body [][]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, body)
}

func TestHandler_Embed_MalformedBody(t *testing.T) {
	h := handler.New(stubSubmitter{}, stubHealth{running: true}, testLogger(), noopCollector{})

	rec := doEmbed(t, h, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Embed_EmptyInputs(t *testing.T) {
	h := handler.New(stubSubmitter{}, stubHealth{running: true}, testLogger(), noopCollector{})

	rec := doEmbed(t, h, `{"inputs":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Embed_NonStringInputs(t *testing.T) {
	h := handler.New(stubSubmitter{}, stubHealth{running: true}, testLogger(), noopCollector{})

	rec := doEmbed(t, h, `{"inputs":[1,2]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Embed_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"overloaded", batcher.ErrOverloaded, http.StatusTooManyRequests},
		{"unavailable", batcher.ErrBatcherUnavailable, http.StatusServiceUnavailable},
		{"oversize rejected", batcher.ErrOversizeRejected, http.StatusBadRequest},
		{"upstream error", &batcher.UpstreamError{Err: assertErr}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.New(stubSubmitter{err: tt.err}, stubHealth{running: true}, testLogger(), noopCollector{})
			rec := doEmbed(t, h, `{"inputs":["a"]}`)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_Healthz(t *testing.T) {
	h := handler.New(stubSubmitter{}, stubHealth{running: true}, testLogger(), noopCollector{})
	rec := httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	h2 := handler.New(stubSubmitter{}, stubHealth{running: false}, testLogger(), noopCollector{})
	rec2 := httptest.NewRecorder()
	h2.Healthz(rec2, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec2.Code)
}

var assertErr = errFixture{}

type errFixture struct{}

func (errFixture) Error() string { return "boom" }
