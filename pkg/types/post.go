// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Post represents one blog post, either parsed from a feed item or
// synthesized from a direct page fetch for a curated slug.
type Post struct {
	// Title is the post title with HTML entities decoded.
	Title string `json:"title" yaml:"title"`

	// Link is the post's URL.
	Link string `json:"link" yaml:"link"`

	// Description is the post summary with markup stripped and
	// entities decoded.
	Description string `json:"description" yaml:"description"`

	// Date is the display-formatted publication date ("Jan 2, 2006"),
	// empty when the feed date is missing or unparseable.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Image is the resolved CDN thumbnail URL, empty when no
	// CDN-prefixable image could be located.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`

	// Slug is the identity key: the path segment following "/p/" in
	// the post link. Posts without a derivable slug cannot be matched
	// into the curated selection but remain in the full list.
	Slug string `json:"slug,omitempty" yaml:"slug,omitempty"`
}
