package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello, World!", "hello-world"},
		{"already slug", "hello-world", "hello-world"},
		{"multiple spaces", "Intro   to    CMS", "intro-to-cms"},
		{"punctuation", "What's New? (2024 Edition)", "whats-new-2024-edition"},
		{"leading and trailing", "  --Spaced Out--  ", "spaced-out"},
		{"underscores kept", "snake_case title", "snake_case-title"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{"Hello, World!", "Intro to CMS", "a--b  c", "MiXeD CaSe 42"}
	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once))
	}
}
