// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package essays

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/afolkest/afolkest.github.io/internal/httputil"
	"github.com/afolkest/afolkest.github.io/pkg/types"
)

// bucketPattern locates the raw storage-bucket image URL inside an
// og:image value, which may nest it behind one or more CDN layers.
var bucketPattern = regexp.MustCompile(`https://substack-post-media\.s3\.amazonaws\.com/public/images/[^\s"&]+`)

// PageMeta holds the Open-Graph metadata scraped from one post page.
type PageMeta struct {
	Title       string
	Description string
	ImageURL    string
}

// FetchPageMeta retrieves pageURL and scrapes its Open-Graph meta tags.
func FetchPageMeta(ctx context.Context, client *http.Client, pageURL string, cfg types.FeedConfig) (PageMeta, error) {
	body, err := httputil.FetchPage(ctx, client, pageURL, cfg.UserAgent)
	if err != nil {
		return PageMeta{}, err
	}
	return ParsePageMeta(body)
}

// ParsePageMeta extracts og:title, og:description and og:image from raw
// page HTML. Missing tags leave the corresponding field empty.
func ParsePageMeta(pageHTML string) (PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return PageMeta{}, err
	}
	return PageMeta{
		Title:       doc.Find(`meta[property="og:title"]`).AttrOr("content", ""),
		Description: doc.Find(`meta[property="og:description"]`).AttrOr("content", ""),
		ImageURL:    doc.Find(`meta[property="og:image"]`).AttrOr("content", ""),
	}, nil
}

// ThumbnailURL rewrites an og:image value into a CDN transform URL. The
// value is URL-decoded, then searched for the raw storage-bucket URL; if
// found, the CDN prefix is prepended. When no bucket URL is present the
// result is empty: the raw og:image is deliberately not used, images are
// served through the CDN transform or not at all.
func ThumbnailURL(ogImage, cdnPrefix string) string {
	if ogImage == "" {
		return ""
	}
	decoded, err := url.PathUnescape(ogImage)
	if err != nil {
		decoded = ogImage
	}
	bucketURL := bucketPattern.FindString(decoded)
	if bucketURL == "" {
		return ""
	}
	return cdnPrefix + bucketURL
}

// ResolveImage fetches a post's page and returns its CDN thumbnail URL.
// Callers treat any error as a per-post warning, not a run failure.
func ResolveImage(ctx context.Context, client *http.Client, postURL string, cfg types.FeedConfig) (string, error) {
	meta, err := FetchPageMeta(ctx, client, postURL, cfg)
	if err != nil {
		return "", err
	}
	return ThumbnailURL(meta.ImageURL, cfg.CDNPrefix), nil
}
