package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cmsapi/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string, dims int) *Client {
	return NewClient(config.AIConfig{
		BaseURL:             url,
		APIKey:              "test-key",
		EmbeddingModel:      "test-embed",
		GenerationModel:     "test-chat",
		EmbeddingDimensions: dims,
	})
}

func embeddingOf(n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = float32(i) * 0.25
	}
	return v
}

func TestClient_Embed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-embed", req.Model)
		assert.Equal(t, "hello world", req.Input)

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": embeddingOf(4)}},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 4)

	emb, err := c.Embed(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Len(t, emb, 4)
	assert.Equal(t, 4, c.Dimensions())
}

func TestClient_EmbedDimensionMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": embeddingOf(3)}},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 768)

	_, err := c.Embed(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestClient_EmbedEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 4)

	_, err := c.Embed(context.Background(), "hello")
	assert.Error(t, err)
}

func TestClient_EmbedUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 4)

	_, err := c.Embed(context.Background(), "hello")
	assert.ErrorContains(t, err, "unexpected status 503")
}

func TestClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "write about cats", req.Messages[1].Content)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Cats are great."}},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 4)

	out, err := c.Generate(context.Background(), "you are a writer", "write about cats")
	require.NoError(t, err)
	assert.Equal(t, "Cats are great.", out)
}
