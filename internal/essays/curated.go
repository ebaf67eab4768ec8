// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package essays

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/afolkest/afolkest.github.io/pkg/types"
)

// Curate resolves the configured curated slugs against the feed-derived
// posts. Slugs absent from the feed are fetched directly from their
// canonical URL and synthesized from the page's Open-Graph metadata
// (title falls back to the raw slug, description to empty, date stays
// empty); synthesized posts join the working set before the slug lookup
// is finalized. The returned selection preserves the configured slug
// order exactly, silently omitting slugs that remain unresolved. The
// second return value is the working set: the feed posts plus any
// synthesized ones.
func Curate(ctx context.Context, client *http.Client, posts []types.Post, cfg types.FeedConfig, w io.Writer) (selected, all []types.Post) {
	all = posts

	// Last write wins on a recurring slug; not expected in practice.
	bySlug := make(map[string]types.Post, len(posts))
	for _, p := range posts {
		if p.Slug != "" {
			bySlug[p.Slug] = p
		}
	}

	for _, slug := range cfg.Selected {
		if _, ok := bySlug[slug]; ok {
			continue
		}

		postURL := cfg.SiteURL + "/p/" + slug
		fmt.Fprintf(w, "  fetching selected post not in feed: %s\n", slug)
		meta, err := FetchPageMeta(ctx, client, postURL, cfg)
		if err != nil {
			fmt.Fprintf(w, "  warning: could not fetch %s: %v\n", postURL, err)
			continue
		}

		title := meta.Title
		if title == "" {
			title = slug
		}
		p := types.Post{
			Title:       title,
			Link:        postURL,
			Description: meta.Description,
			Image:       ThumbnailURL(meta.ImageURL, cfg.CDNPrefix),
			Slug:        slug,
		}
		all = append(all, p)
		bySlug[slug] = p

		time.Sleep(cfg.FetchDelay)
	}

	for _, slug := range cfg.Selected {
		if p, ok := bySlug[slug]; ok {
			selected = append(selected, p)
		}
	}
	return selected, all
}
