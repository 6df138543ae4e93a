package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the object storage abstraction used for media
// binaries. Implementations stream to an S3-compatible backend; no local disk.

// PutOptions define optional parameters for uploading objects. Size should be
// the exact byte count if known, or -1 to let the backend chunk the stream.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// ObjectStorage is an S3-compatible object store client.
type ObjectStorage interface {
	// Put uploads an object under key from the reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL for the object.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
