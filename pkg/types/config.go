// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds settings shared by all outbound HTTP requests.
type HTTPConfig struct {
	// Timeout bounds a single request.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is sent on every request. A browser-like value avoids
	// being blocked by feed and page origins.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// BibConfig configures the publications pipeline.
type BibConfig struct {
	// BibPath is the bibliography source file.
	BibPath string `json:"bib_path" yaml:"bib_path"`

	// HighlightAuthor is the site owner's name in "Given Family" order.
	// Occurrences in author lists are replaced by a styled initials
	// marker. Empty disables highlighting.
	HighlightAuthor string `json:"highlight_author" yaml:"highlight_author"`
}

// FeedConfig configures the essays pipeline.
type FeedConfig struct {
	HTTPConfig `yaml:",inline"`

	// FeedURL is the RSS feed endpoint.
	FeedURL string `json:"feed_url" yaml:"feed_url"`

	// SiteURL is the blog's base URL, used to build canonical post
	// URLs ("<SiteURL>/p/<slug>") for curated posts absent from the feed.
	SiteURL string `json:"site_url" yaml:"site_url"`

	// TargetFile is the HTML document whose marker regions are rewritten.
	TargetFile string `json:"target_file" yaml:"target_file"`

	// PageTimeout bounds each per-post page fetch.
	PageTimeout time.Duration `json:"page_timeout" yaml:"page_timeout"`

	// FetchDelay is the politeness delay between consecutive page fetches.
	FetchDelay time.Duration `json:"fetch_delay" yaml:"fetch_delay"`

	// CDNPrefix is the image-transform URL template prepended to
	// resolved storage-bucket image URLs.
	CDNPrefix string `json:"cdn_prefix" yaml:"cdn_prefix"`

	// Selected is the ordered list of curated post slugs.
	Selected []string `json:"selected" yaml:"selected"`
}
