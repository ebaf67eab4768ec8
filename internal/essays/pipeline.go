// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package essays

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/afolkest/afolkest.github.io/internal/htmldoc"
	"github.com/afolkest/afolkest.github.io/pkg/types"
)

// Marker comments delimiting the two rewritten regions of the target file.
const (
	SelectedStartMarker = "<!-- SELECTED_START -->"
	SelectedEndMarker   = "<!-- SELECTED_END -->"
	EssaysStartMarker   = "<!-- ESSAYS_START -->"
	EssaysEndMarker     = "<!-- ESSAYS_END -->"
)

// Run executes the essays pipeline: fetch the feed, resolve a thumbnail
// for each post, resolve the curated selection, and rewrite the target
// file's two marker regions. Per-post fetch failures are warnings; the
// target file is only written after every marker lookup has succeeded,
// so a failure never leaves it partially modified. Progress is reported
// on w.
func Run(ctx context.Context, cfg types.FeedConfig, w io.Writer) error {
	feedClient := &http.Client{Timeout: cfg.Timeout}
	pageClient := &http.Client{Timeout: cfg.PageTimeout}

	fmt.Fprintln(w, "Fetching feed...")
	posts, err := FetchPosts(ctx, feedClient, cfg)
	if err != nil {
		return fmt.Errorf("fetching feed: %w", err)
	}
	fmt.Fprintf(w, "Found %d posts\n", len(posts))

	// Posts are processed in feed order, one fetch at a time, with a
	// politeness delay between page loads.
	fmt.Fprintln(w, "Fetching OG images from each post...")
	for i := range posts {
		fmt.Fprintf(w, "  - %s\n", posts[i].Title)
		img, err := ResolveImage(ctx, pageClient, posts[i].Link, cfg)
		if err != nil {
			fmt.Fprintf(w, "  warning: could not fetch OG image from %s: %v\n", posts[i].Link, err)
		}
		posts[i].Image = img
		time.Sleep(cfg.FetchDelay)
	}

	selected, all := Curate(ctx, pageClient, posts, cfg, w)

	fmt.Fprintf(w, "Updating %s...\n", cfg.TargetFile)
	content, err := os.ReadFile(cfg.TargetFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.TargetFile, err)
	}

	doc, err := htmldoc.ReplaceAll(string(content), []htmldoc.Region{
		{StartMarker: SelectedStartMarker, EndMarker: SelectedEndMarker, Body: RenderCards(selected)},
		{StartMarker: EssaysStartMarker, EndMarker: EssaysEndMarker, Body: RenderCards(all)},
	})
	if err != nil {
		return fmt.Errorf("updating %s: %w", cfg.TargetFile, err)
	}

	if err := os.WriteFile(cfg.TargetFile, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.TargetFile, err)
	}

	fmt.Fprintln(w, "Done!")
	return nil
}
