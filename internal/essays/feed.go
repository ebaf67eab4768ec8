// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package essays fetches a blog's RSS feed and rewrites the essay-card
// regions of the homepage's essays document.
package essays

import (
	"context"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/afolkest/afolkest.github.io/internal/httputil"
	"github.com/afolkest/afolkest.github.io/pkg/types"
)

// dateFormat is the display format for post dates.
const dateFormat = "Jan 2, 2006"

// stripPolicy removes all markup from feed descriptions, leaving text only.
var stripPolicy = bluemonday.StrictPolicy()

// FetchPosts retrieves the feed and returns its posts in feed order
// (assumed reverse-chronological; not re-sorted). Missing item fields
// become empty strings, and an unparseable publication date leaves the
// display date empty rather than failing the run.
func FetchPosts(ctx context.Context, client *http.Client, cfg types.FeedConfig) ([]types.Post, error) {
	body, err := httputil.FetchPage(ctx, client, cfg.FeedURL, cfg.UserAgent)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, err
	}

	posts := make([]types.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		posts = append(posts, postFromItem(item))
	}
	return posts, nil
}

func postFromItem(item *gofeed.Item) types.Post {
	p := types.Post{
		Title:       item.Title,
		Link:        item.Link,
		Description: CleanDescription(item.Description),
		Slug:        ExtractSlug(item.Link),
	}
	if item.PublishedParsed != nil {
		p.Date = item.PublishedParsed.Format(dateFormat)
	}
	return p
}

// CleanDescription strips all markup from a feed description and decodes
// HTML entities, so "<p>Hello &amp; welcome</p>" becomes "Hello & welcome".
func CleanDescription(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}

// ExtractSlug returns the path segment following "/p/" in a post link,
// the post's stable identity key. Links without such a segment yield "".
func ExtractSlug(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg == "p" && i+1 < len(segments) && segments[i+1] != "" {
			return segments[i+1]
		}
	}
	return ""
}
