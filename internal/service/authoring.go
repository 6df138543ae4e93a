package service

import (
	"context"
	"fmt"

	"cmsapi/internal/ai"
)

// GenerateResult is the response shape for AI content generation.
type GenerateResult struct {
	GeneratedContent string `json:"generated_content"`
	Prompt           string `json:"prompt"`
	Type             string `json:"type"`
}

// SummarizeResult is the response shape for AI summarization.
type SummarizeResult struct {
	Summary       string `json:"summary"`
	ContentLength int    `json:"content_length"`
}

// AuthoringService provides AI-assisted writing: drafting new content from a
// prompt and summarizing existing content.
type AuthoringService interface {
	Generate(ctx context.Context, prompt, contentType string) (*GenerateResult, error)
	Summarize(ctx context.Context, content string) (*SummarizeResult, error)
}

type authoringService struct {
	generator ai.Generator
}

// NewAuthoringService constructs an AuthoringService.
func NewAuthoringService(generator ai.Generator) AuthoringService {
	return &authoringService{generator: generator}
}

func (s *authoringService) Generate(ctx context.Context, prompt, contentType string) (*GenerateResult, error) {
	if prompt == "" {
		return nil, ErrPromptRequired
	}
	if contentType == "" {
		contentType = "content"
	}

	system := fmt.Sprintf(
		"You are a helpful content writer for a CMS. Generate %s content that is well-structured and engaging.",
		contentType,
	)
	out, err := s.generator.Generate(ctx, system, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return &GenerateResult{
		GeneratedContent: out,
		Prompt:           prompt,
		Type:             contentType,
	}, nil
}

func (s *authoringService) Summarize(ctx context.Context, content string) (*SummarizeResult, error) {
	if content == "" {
		return nil, ErrContentRequired
	}

	const system = "You are a helpful editor for a CMS. Summarize the provided content in a few concise sentences."
	out, err := s.generator.Generate(ctx, system, content)
	if err != nil {
		return nil, fmt.Errorf("summarize content: %w", err)
	}

	return &SummarizeResult{
		Summary:       out,
		ContentLength: len(content),
	}, nil
}
