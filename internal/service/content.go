package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"cmsapi/internal/ai"
	"cmsapi/internal/kv"
	"cmsapi/internal/model"
	"cmsapi/internal/vector"
)

// contentKeyPrefix namespaces content records in the key-value store.
const contentKeyPrefix = "content:"

// indexEligibilityThreshold is the minimum body length (exclusive) for a
// record to get a search-index entry. Shorter bodies are stored but never
// indexed, so they are retrievable by id yet unsearchable. Length is measured
// in UTF-16 code units, not bytes, so multibyte text indexes the same as any
// other text of equal character count.
const indexEligibilityThreshold = 100

// bodyLength counts UTF-16 code units; characters outside the basic
// multilingual plane count as two.
func bodyLength(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}

// List pagination defaults.
const (
	defaultListLimit  = 20
	defaultListOffset = 0
)

// CreateContentInput is the validated input for Create.
type CreateContentInput struct {
	Title  string   `json:"title" validate:"required"`
	Body   string   `json:"content" validate:"required"`
	Status string   `json:"status" validate:"omitempty,oneof=draft published"`
	Tags   []string `json:"tags"`
	Author string   `json:"author"`
}

// UpdateContentInput is the validated input for Update. Only fields present
// and non-empty are applied; an empty field keeps the stored value, so a field
// cannot be cleared through an update.
type UpdateContentInput struct {
	Title  string   `json:"title"`
	Body   string   `json:"content"`
	Status string   `json:"status" validate:"omitempty,oneof=draft published"`
	Tags   []string `json:"tags"`
}

// SideEffect records the outcome of a best-effort sub-operation. A failed
// side effect never fails the enclosing operation; it is surfaced here so
// callers (and tests) can observe the joint state instead of reading logs.
type SideEffect struct {
	Attempted bool
	Err       error
}

// CreateResult is the joint outcome of a create: the durably stored record
// plus the outcome of the best-effort indexing attempt.
type CreateResult struct {
	Content  *model.Content
	Indexing SideEffect
}

// DeleteResult is the joint outcome of a delete.
type DeleteResult struct {
	ID          string
	IndexDelete SideEffect
}

// ContentPage is the list response shape. The field names and defaults are a
// contract surface and must not change.
type ContentPage struct {
	Items  []model.Content `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// ContentService owns the content entity lifecycle and maintains its derived
// search-index entry. Primary-store failures fail the operation; vector-index
// failures are captured as side-effect outcomes and logged, keeping content
// operations available when indexing is degraded.
type ContentService interface {
	Create(ctx context.Context, in CreateContentInput) (*CreateResult, error)
	Get(ctx context.Context, id string) (*model.Content, error)
	Update(ctx context.Context, id string, in UpdateContentInput) (*model.Content, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	List(ctx context.Context, limit, offset int) (*ContentPage, error)
}

type contentService struct {
	store    kv.Store
	index    vector.Index
	embedder ai.Embedder
	validate *validator.Validate
}

// NewContentService constructs a ContentService with explicit handles to its
// collaborators; there is no package-level state.
func NewContentService(store kv.Store, index vector.Index, embedder ai.Embedder) ContentService {
	return &contentService{
		store:    store,
		index:    index,
		embedder: embedder,
		validate: validator.New(),
	}
}

func contentKey(id string) string {
	return contentKeyPrefix + id
}

func (s *contentService) Create(ctx context.Context, in CreateContentInput) (*CreateResult, error) {
	if in.Title == "" || in.Body == "" {
		return nil, ErrMissingFields
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	content := &model.Content{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Body:      in.Body,
		Slug:      model.Slugify(in.Title),
		Status:    in.Status,
		Tags:      in.Tags,
		Author:    in.Author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if content.Status == "" {
		content.Status = model.StatusDraft
	}
	if content.Tags == nil {
		content.Tags = []string{}
	}
	if content.Author == "" {
		content.Author = "system"
	}

	b, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}
	if err := s.store.Put(ctx, contentKey(content.ID), b); err != nil {
		return nil, fmt.Errorf("store content: %w", err)
	}

	res := &CreateResult{Content: content}

	// Index for search only when the body is substantial. The record is
	// already durably stored, so an indexing failure must not fail the create.
	if bodyLength(in.Body) > indexEligibilityThreshold {
		res.Indexing.Attempted = true
		if err := s.indexContent(ctx, content); err != nil {
			res.Indexing.Err = err
			logJSON(map[string]any{
				"level":      "warn",
				"msg":        "content_indexing_failed",
				"content_id": content.ID,
				"error":      err.Error(),
			})
		}
	}

	return res, nil
}

// indexContent embeds title and body together and upserts the entry keyed by
// the content id, so a record has at most one index entry.
func (s *contentService) indexContent(ctx context.Context, content *model.Content) error {
	emb, err := s.embedder.Embed(ctx, content.Title+" "+content.Body)
	if err != nil {
		return fmt.Errorf("generate embedding: %w", err)
	}

	err = s.index.Upsert(ctx, vector.Entry{
		ID:     content.ID,
		Values: emb,
		Metadata: map[string]string{
			"title":      content.Title,
			"slug":       content.Slug,
			"status":     content.Status,
			"created_at": content.CreatedAt.Format(time.RFC3339),
			"type":       "content",
		},
	})
	if err != nil {
		return fmt.Errorf("index upsert: %w", err)
	}
	return nil
}

func (s *contentService) Get(ctx context.Context, id string) (*model.Content, error) {
	b, err := s.store.Get(ctx, contentKey(id))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get content: %w", err)
	}

	var content model.Content
	if err := json.Unmarshal(b, &content); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}
	return &content, nil
}

func (s *contentService) Update(ctx context.Context, id string, in UpdateContentInput) (*model.Content, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	content, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		content.Title = in.Title
		content.Slug = model.Slugify(in.Title)
	}
	if in.Body != "" {
		content.Body = in.Body
	}
	if in.Status != "" {
		content.Status = in.Status
	}
	if len(in.Tags) > 0 {
		content.Tags = in.Tags
	}
	content.UpdatedAt = time.Now().UTC()

	b, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}
	// The index entry is intentionally not refreshed here; search results keep
	// the metadata captured at creation time.
	if err := s.store.Put(ctx, contentKey(id), b); err != nil {
		return nil, fmt.Errorf("store content: %w", err)
	}
	return content, nil
}

func (s *contentService) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	// Primary store first. Once the record is gone the delete has succeeded;
	// the index entry is removed best-effort.
	if err := s.store.Delete(ctx, contentKey(id)); err != nil {
		return nil, fmt.Errorf("delete content: %w", err)
	}

	res := &DeleteResult{ID: id, IndexDelete: SideEffect{Attempted: true}}
	if err := s.index.Delete(ctx, id); err != nil {
		res.IndexDelete.Err = err
		logJSON(map[string]any{
			"level":      "warn",
			"msg":        "index_delete_failed",
			"content_id": id,
			"error":      err.Error(),
		})
	}
	return res, nil
}

func (s *contentService) List(ctx context.Context, limit, offset int) (*ContentPage, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = defaultListOffset
	}

	page, err := s.store.ListPrefix(ctx, contentKeyPrefix, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	items := make([]model.Content, 0, len(page.Values))
	for _, v := range page.Values {
		var content model.Content
		if err := json.Unmarshal(v, &content); err != nil {
			return nil, fmt.Errorf("unmarshal content: %w", err)
		}
		items = append(items, content)
	}

	return &ContentPage{
		Items:  items,
		Total:  page.Total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
