package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cmsapi/internal/config"
)

// ErrDimensionMismatch indicates the provider returned a vector whose length
// does not match the configured dimensionality. This is an invariant violation,
// not a recoverable condition; callers must propagate it.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

const (
	defaultTimeout    = 30 * time.Second
	defaultDimensions = 768
)

// Client talks to an OpenAI-compatible model API and implements both
// Embedder and Generator. It is safe for concurrent use.
type Client struct {
	http            *http.Client
	baseURL         string
	apiKey          string
	embeddingModel  string
	generationModel string
	dimensions      int
}

var (
	_ Embedder  = (*Client)(nil)
	_ Generator = (*Client)(nil)
)

// NewClient creates a provider client from config, applying defaults for
// timeout and dimensionality.
func NewClient(cfg config.AIConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	dims := cfg.EmbeddingDimensions
	if dims <= 0 {
		dims = defaultDimensions
	}

	return &Client{
		http:            &http.Client{Timeout: timeout},
		baseURL:         cfg.BaseURL,
		apiKey:          cfg.APIKey,
		embeddingModel:  cfg.EmbeddingModel,
		generationModel: cfg.GenerationModel,
		dimensions:      dims,
	}
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// Embed requests an embedding for text and enforces the dimensionality contract.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	var out embeddingResponse
	err := c.post(ctx, "/v1/embeddings", embeddingRequest{
		Model: c.embeddingModel,
		Input: text,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("embeddings request: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, errors.New("no embedding data returned")
	}

	emb := out.Data[0].Embedding
	if len(emb) != c.dimensions {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(emb), c.dimensions)
	}
	return emb, nil
}

// Dimensions returns the contracted embedding vector size.
func (c *Client) Dimensions() int {
	return c.dimensions
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate runs a chat completion with a system instruction and a user prompt.
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	var out chatResponse
	err := c.post(ctx, "/v1/chat/completions", chatRequest{
		Model: c.generationModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}, &out)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return out.Choices[0].Message.Content, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, b)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
