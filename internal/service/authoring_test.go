package service

import (
	"context"
	"errors"
	"testing"

	aiMocks "cmsapi/internal/ai/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthoringService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing prompt", func(t *testing.T) {
		svc := NewAuthoringService(new(aiMocks.MockGenerator))

		_, err := svc.Generate(ctx, "", "blog")

		assert.ErrorIs(t, err, ErrPromptRequired)
	})

	t.Run("default type", func(t *testing.T) {
		gen := new(aiMocks.MockGenerator)
		svc := NewAuthoringService(gen)

		gen.On("Generate", ctx, mock.MatchedBy(func(system string) bool {
			return len(system) > 0
		}), "write an intro").Return("Generated text.", nil).Once()

		res, err := svc.Generate(ctx, "write an intro", "")

		require.NoError(t, err)
		assert.Equal(t, "Generated text.", res.GeneratedContent)
		assert.Equal(t, "write an intro", res.Prompt)
		assert.Equal(t, "content", res.Type)
		gen.AssertExpectations(t)
	})

	t.Run("type flows into the system prompt", func(t *testing.T) {
		gen := new(aiMocks.MockGenerator)
		svc := NewAuthoringService(gen)

		gen.On("Generate", ctx,
			"You are a helpful content writer for a CMS. Generate blog content that is well-structured and engaging.",
			"write a post").Return("A post.", nil).Once()

		res, err := svc.Generate(ctx, "write a post", "blog")

		require.NoError(t, err)
		assert.Equal(t, "blog", res.Type)
		gen.AssertExpectations(t)
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		gen := new(aiMocks.MockGenerator)
		svc := NewAuthoringService(gen)

		gen.On("Generate", ctx, mock.Anything, mock.Anything).Return("", errors.New("model overloaded"))

		_, err := svc.Generate(ctx, "p", "content")

		assert.ErrorContains(t, err, "model overloaded")
	})
}

func TestAuthoringService_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("missing content", func(t *testing.T) {
		svc := NewAuthoringService(new(aiMocks.MockGenerator))

		_, err := svc.Summarize(ctx, "")

		assert.ErrorIs(t, err, ErrContentRequired)
	})

	t.Run("returns summary and length", func(t *testing.T) {
		gen := new(aiMocks.MockGenerator)
		svc := NewAuthoringService(gen)

		gen.On("Generate", ctx, mock.Anything, "a long article").Return("Short.", nil)

		res, err := svc.Summarize(ctx, "a long article")

		require.NoError(t, err)
		assert.Equal(t, "Short.", res.Summary)
		assert.Equal(t, len("a long article"), res.ContentLength)
	})
}
