// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the sitegen pipelines.
package types

import "strconv"

// Publication represents one bibliography entry. Every field is optional;
// an entry that yields no fields at all is dropped by the parser.
type Publication struct {
	// Title is the publication title with LaTeX escapes resolved.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Authors is the raw author list as written in the source
	// (e.g. "Folkestad, Åsmund and Someone Else").
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is the 4-digit publication year.
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	// Journal is the venue name.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Volume is the journal volume.
	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`

	// Pages is the page range.
	Pages string `json:"pages,omitempty" yaml:"pages,omitempty"`

	// ArxivID is the arXiv eprint identifier (e.g. "2301.07041").
	ArxivID string `json:"arxiv,omitempty" yaml:"arxiv,omitempty"`

	// DOI is the digital object identifier.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// IsEmpty reports whether no field was extracted for this entry.
func (p Publication) IsEmpty() bool {
	return p == Publication{}
}

// YearNum returns the year as an integer for sorting. Entries with a
// missing or malformed year sort as year 0, i.e. last in a descending sort.
func (p Publication) YearNum() int {
	n, err := strconv.Atoi(p.Year)
	if err != nil {
		return 0
	}
	return n
}
