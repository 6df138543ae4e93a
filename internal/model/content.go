package model

import "time"

// Content statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Content is the persisted article/page entity managed by the CMS.
// This is a pure domain model with no persistence-specific dependencies or tags;
// it is serialized as-is into the key-value store and over HTTP.
type Content struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"content"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	Tags      []string  `json:"tags"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
