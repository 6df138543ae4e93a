package vector

import "context"

// Entry is a vector with attached metadata, keyed by the owning record's ID.
type Entry struct {
	ID       string
	Values   []float32
	Metadata map[string]string
}

// Match is a single result from a similarity query.
type Match struct {
	ID       string
	Score    float32
	Metadata map[string]string
}

// Index stores embeddings with metadata and supports nearest-neighbor queries.
// A record has at most one entry, keyed by its ID; upserting replaces it.
type Index interface {
	// Upsert inserts or replaces the entry for entry.ID.
	Upsert(ctx context.Context, entry Entry) error

	// Query returns up to topK entries nearest to the given vector,
	// ordered by descending similarity score. Raw vectors are not returned.
	Query(ctx context.Context, values []float32, topK int) ([]Match, error)

	// Delete removes the entry for id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases resources.
	Close() error
}
