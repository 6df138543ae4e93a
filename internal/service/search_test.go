package service

import (
	"context"
	"errors"
	"testing"

	aiMocks "cmsapi/internal/ai/mocks"
	"cmsapi/internal/vector"
	vectorMocks "cmsapi/internal/vector/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query", func(t *testing.T) {
		svc := NewSearchService(new(vectorMocks.MockIndex), new(aiMocks.MockEmbedder))

		_, err := svc.Search(ctx, "", 10)

		assert.ErrorIs(t, err, ErrQueryRequired)
	})

	t.Run("shapes results from metadata only", func(t *testing.T) {
		index := new(vectorMocks.MockIndex)
		embedder := new(aiMocks.MockEmbedder)
		svc := NewSearchService(index, embedder)

		emb := []float32{0.1, 0.2}
		embedder.On("Embed", ctx, "CMS").Return(emb, nil).Once()
		index.On("Query", ctx, emb, 5).Return([]vector.Match{
			{
				ID:    "abc",
				Score: 0.91,
				Metadata: map[string]string{
					"title":      "Intro to CMS",
					"slug":       "intro-to-cms",
					"status":     "draft",
					"created_at": "2024-01-02T03:04:05Z",
					"type":       "content",
				},
			},
			{
				ID:       "def",
				Score:    0.42,
				Metadata: map[string]string{"title": "Other"},
			},
		}, nil).Once()

		res, err := svc.Search(ctx, "CMS", 5)

		require.NoError(t, err)
		assert.Equal(t, "CMS", res.Query)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Results, 2)

		first := res.Results[0]
		assert.Equal(t, "abc", first.ID)
		assert.InDelta(t, 0.91, float64(first.Score), 1e-6)
		assert.Equal(t, "Intro to CMS", first.Title)
		assert.Equal(t, "intro-to-cms", first.Slug)
		assert.Equal(t, "draft", first.Status)
		assert.Equal(t, "content", first.Type)

		assert.GreaterOrEqual(t, res.Results[0].Score, res.Results[1].Score)
		embedder.AssertExpectations(t)
		index.AssertExpectations(t)
	})

	t.Run("default limit", func(t *testing.T) {
		index := new(vectorMocks.MockIndex)
		embedder := new(aiMocks.MockEmbedder)
		svc := NewSearchService(index, embedder)

		embedder.On("Embed", ctx, "q").Return([]float32{0.1}, nil)
		index.On("Query", ctx, mock.Anything, 10).Return([]vector.Match{}, nil)

		res, err := svc.Search(ctx, "q", 0)

		require.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		index.AssertExpectations(t)
	})

	t.Run("embedding failure propagates", func(t *testing.T) {
		index := new(vectorMocks.MockIndex)
		embedder := new(aiMocks.MockEmbedder)
		svc := NewSearchService(index, embedder)

		embedder.On("Embed", ctx, "q").Return(nil, errors.New("dimension mismatch"))

		_, err := svc.Search(ctx, "q", 10)

		assert.ErrorContains(t, err, "dimension mismatch")
		index.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
	})
}
