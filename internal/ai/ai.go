package ai

import "context"

// Package ai wraps the hosted model provider behind two small capabilities:
// turning text into fixed-length embedding vectors and generating text from
// a prompt. The provider is opaque; only its HTTP API shape is assumed.

// Embedder turns text into a fixed-length numeric vector.
type Embedder interface {
	// Embed returns the embedding for text. The vector length is guaranteed
	// to equal Dimensions; a mismatching provider response is an error.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the contracted embedding vector size.
	Dimensions() int
}

// Generator produces text from a system instruction and a user prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}
