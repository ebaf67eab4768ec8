// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package essays

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/afolkest/afolkest.github.io/pkg/types"
)

func TestRenderCards(t *testing.T) {
	posts := []types.Post{
		{
			Title:       "First Essay",
			Link:        "https://example.test/p/first",
			Description: "On things & stuff",
			Date:        "Mar 5, 2024",
			Image:       "https://cdn.example/img.png",
		},
		{
			Title:       "Second Essay",
			Link:        "https://example.test/p/second",
			Description: "No image here",
		},
	}

	got := RenderCards(posts)

	assert.Contains(t, got, `<a href="https://example.test/p/first" target="_blank" class="essay-card">`)
	assert.Contains(t, got, `<img src="https://cdn.example/img.png" alt="First Essay">`)
	assert.Contains(t, got, "<h3>First Essay</h3>")
	assert.Contains(t, got, `<p class="essay-card-date">Mar 5, 2024</p>`)
	assert.Contains(t, got, "<p>On things &amp; stuff</p>", "network text is escaped")

	assert.Contains(t, got, "<h3>Second Essay</h3>")
	assert.Less(t, strings.Index(got, "First Essay"), strings.Index(got, "Second Essay"),
		"input order preserved")
}

func TestRenderCard_NoImageNoDate(t *testing.T) {
	got := renderCard(types.Post{Title: "T", Link: "https://x.test/p/t"})
	assert.NotContains(t, got, "<img")
	assert.NotContains(t, got, "essay-card-date")
}

func TestRenderCards_Empty(t *testing.T) {
	assert.Empty(t, RenderCards(nil))
}
