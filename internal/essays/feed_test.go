// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package essays

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afolkest/afolkest.github.io/pkg/types"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Extra Medium</title>
    <link>https://example.test</link>
    <item>
      <title>First Post</title>
      <link>https://example.test/p/first-post</link>
      <description><![CDATA[<p>Hello &amp; welcome</p>]]></description>
      <pubDate>Tue, 05 Mar 2024 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Undated Post</title>
      <link>https://example.test/about</link>
      <description>plain text</description>
      <pubDate>not a date</pubDate>
    </item>
  </channel>
</rss>`

func testFeedConfig(feedURL string) types.FeedConfig {
	return types.FeedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "Mozilla/5.0",
		},
		FeedURL: feedURL,
	}
}

func TestFetchPosts(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer ts.Close()

	posts, err := FetchPosts(context.Background(), ts.Client(), testFeedConfig(ts.URL))
	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, "First Post", first.Title)
	assert.Equal(t, "https://example.test/p/first-post", first.Link)
	assert.Equal(t, "Hello & welcome", first.Description, "tags stripped, entities decoded")
	assert.Equal(t, "Mar 5, 2024", first.Date)
	assert.Equal(t, "first-post", first.Slug)
	assert.Equal(t, "Mozilla/5.0", gotUA)

	second := posts[1]
	assert.Equal(t, "Undated Post", second.Title)
	assert.Empty(t, second.Date, "malformed date leaves display date empty")
	assert.Empty(t, second.Slug, "no /p/ segment means no slug")
}

func TestFetchPosts_FeedUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := FetchPosts(context.Background(), ts.Client(), testFeedConfig(ts.URL))
	require.Error(t, err)
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tags and entities", "<p>Hello &amp; welcome</p>", "Hello & welcome"},
		{"nested markup", `<div><a href="x">link</a> text</div>`, "link text"},
		{"plain", "already clean", "already clean"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDescription(tt.in))
		})
	}
}

func TestExtractSlug(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"post link", "https://example.test/p/my-essay", "my-essay"},
		{"trailing slash", "https://example.test/p/my-essay/", "my-essay"},
		{"no p segment", "https://example.test/about", ""},
		{"p is last segment", "https://example.test/p", ""},
		{"empty link", "", ""},
		{"unparseable", "://nope", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSlug(tt.link))
		})
	}
}
