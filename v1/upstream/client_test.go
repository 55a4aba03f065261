package upstream_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/upstream"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return upstream.NewClient(upstream.Config{URL: srv.URL, Timeout: time.Second})
}

func TestHTTPClient_Embed_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embed", r.URL.Path)

		var body struct {
			Inputs []string `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"a", "b"}, body.Inputs)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([][]float64{{1, 2}, {3, 4}})
	})

	embeddings, err := client.Embed(t.Context(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, embeddings)
}

func TestHTTPClient_Embed_HTTPStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.Embed(t.Context(), []string{"a"})
	require.Error(t, err)
	assert.True(t, upstream.IsHTTPStatus(err))
}

func TestHTTPClient_Embed_DecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.Embed(t.Context(), []string{"a"})
	require.Error(t, err)
	assert.True(t, upstream.IsDecode(err))
}

func TestHTTPClient_Embed_ShapeMismatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([][]float64{{1, 2}})
	})

	_, err := client.Embed(t.Context(), []string{"a", "b"})
	require.Error(t, err)
	assert.True(t, upstream.IsShapeMismatch(err))
}

func TestHTTPClient_Embed_Transport(t *testing.T) {
	client := upstream.NewClient(upstream.Config{URL: "http://127.0.0.1:0", Timeout: 50 * time.Millisecond})

	_, err := client.Embed(t.Context(), []string{"a"})
	require.Error(t, err)
	assert.True(t, upstream.IsTransport(err))
}
