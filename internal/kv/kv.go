package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists under the key.
var ErrKeyNotFound = errors.New("key not found")

// Page is a slice of values selected by a prefix scan plus the total number
// of keys matching the prefix.
type Page struct {
	Values [][]byte
	Total  int
}

// Store is durable string-keyed storage for JSON-encoded records.
// Single-key operations are atomic; there is no multi-key transaction.
// Implementations live in subpackages (e.g., postgres).
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting any existing value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key. It returns nil if the key did not exist.
	Delete(ctx context.Context, key string) error

	// ListPrefix returns a page of values whose keys start with prefix,
	// ordered by key, and the total number of matching keys.
	ListPrefix(ctx context.Context, prefix string, limit, offset int) (*Page, error)
}
