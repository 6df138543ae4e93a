package model

import "time"

// Media represents an uploaded media file. The binary lives in object storage;
// this record holds its metadata and is kept in the key-value store.
type Media struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
