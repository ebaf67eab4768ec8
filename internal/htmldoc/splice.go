// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmldoc rewrites marker-delimited regions of HTML documents.
package htmldoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMarkerNotFound is returned when a region's start or end marker is
// absent from the document, or when the markers appear out of order.
var ErrMarkerNotFound = errors.New("marker not found")

// regionIndent is re-inserted before the end marker so the marker keeps
// its position in the surrounding document's indentation.
const regionIndent = "            "

// Replace substitutes everything strictly between startMarker and
// endMarker with body, keeping both markers in place. The rebuilt region
// is startMarker, newline, body, newline, indentation, endMarker, so the
// operation is idempotent per region: re-splicing a new body yields the
// same document as splicing it into the original.
func Replace(doc, startMarker, endMarker, body string) (string, error) {
	start := strings.Index(doc, startMarker)
	if start < 0 {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, startMarker)
	}
	end := strings.Index(doc, endMarker)
	if end < 0 {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, endMarker)
	}
	if end < start+len(startMarker) {
		return "", fmt.Errorf("%w: %q precedes %q", ErrMarkerNotFound, endMarker, startMarker)
	}

	return doc[:start+len(startMarker)] + "\n" + body + "\n" + regionIndent + doc[end:], nil
}

// Region pairs a marker-delimited span with its replacement body.
type Region struct {
	StartMarker string
	EndMarker   string
	Body        string
}

// ReplaceAll splices every region into doc. All marker lookups are
// verified before any region is rewritten, so a missing marker in any
// region leaves the caller's document untouched.
func ReplaceAll(doc string, regions []Region) (string, error) {
	for _, r := range regions {
		if !strings.Contains(doc, r.StartMarker) {
			return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, r.StartMarker)
		}
		if !strings.Contains(doc, r.EndMarker) {
			return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, r.EndMarker)
		}
	}

	var err error
	for _, r := range regions {
		doc, err = Replace(doc, r.StartMarker, r.EndMarker, r.Body)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}
