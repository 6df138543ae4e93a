package service

import (
	"context"
	"fmt"

	"cmsapi/internal/ai"
	"cmsapi/internal/vector"
)

const defaultSearchLimit = 10

// SearchHit is a single ranked result. All fields come from the index entry's
// metadata; the key-value record is never re-fetched, so body text is never
// exposed through search.
type SearchHit struct {
	ID        string  `json:"id"`
	Score     float32 `json:"score"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	Type      string  `json:"type"`
}

// SearchResponse is the search response shape.
type SearchResponse struct {
	Query   string      `json:"query"`
	Results []SearchHit `json:"results"`
	Total   int         `json:"total"`
}

// SearchService maps a free-text query to ranked content references.
// Results reflect only entries that were successfully indexed at creation
// time; content that was never indexed is unsearchable by design.
type SearchService interface {
	Search(ctx context.Context, query string, limit int) (*SearchResponse, error)
}

type searchService struct {
	index    vector.Index
	embedder ai.Embedder
}

// NewSearchService constructs a SearchService.
func NewSearchService(index vector.Index, embedder ai.Embedder) SearchService {
	return &searchService{index: index, embedder: embedder}
}

func (s *searchService) Search(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	if query == "" {
		return nil, ErrQueryRequired
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	emb, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	matches, err := s.index.Query(ctx, emb, limit)
	if err != nil {
		return nil, fmt.Errorf("index query: %w", err)
	}

	results := make([]SearchHit, 0, len(matches))
	for _, m := range matches {
		results = append(results, SearchHit{
			ID:        m.ID,
			Score:     m.Score,
			Title:     m.Metadata["title"],
			Slug:      m.Metadata["slug"],
			Status:    m.Metadata["status"],
			CreatedAt: m.Metadata["created_at"],
			Type:      m.Metadata["type"],
		})
	}

	return &SearchResponse{
		Query:   query,
		Results: results,
		Total:   len(results),
	}, nil
}
