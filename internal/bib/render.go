// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/afolkest/afolkest.github.io/pkg/types"
)

// Link bases for publication titles. arXiv wins over DOI when both are set.
const (
	arxivAbsBase = "https://arxiv.org/abs/"
	doiBase      = "https://doi.org/"
)

// Highlighter replaces the site owner's name in author lists with a
// styled initials marker. It matches both "Family, Given" and
// "Given Family" orderings; all other authors pass through verbatim.
type Highlighter struct {
	familyFirst *regexp.Regexp
	givenFirst  *regexp.Regexp
	span        string
}

// NewHighlighter builds a Highlighter for fullName given in
// "Given Family" order. A nil Highlighter is returned for an empty name
// and disables highlighting.
func NewHighlighter(fullName string) *Highlighter {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return nil
	}

	span := fmt.Sprintf(`<span class="highlight-author">%s</span>`, initials(name))

	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		// Single-token name: only one ordering exists.
		p := regexp.MustCompile(regexp.QuoteMeta(name))
		return &Highlighter{familyFirst: p, givenFirst: p, span: span}
	}

	given, family := name[:idx], name[idx+1:]
	return &Highlighter{
		familyFirst: regexp.MustCompile(regexp.QuoteMeta(family) + `,\s*` + regexp.QuoteMeta(given)),
		givenFirst:  regexp.MustCompile(regexp.QuoteMeta(given) + `\s+` + regexp.QuoteMeta(family)),
		span:        span,
	}
}

// Apply rewrites occurrences of the configured name in authors.
func (h *Highlighter) Apply(authors string) string {
	if h == nil {
		return authors
	}
	out := h.familyFirst.ReplaceAllString(authors, h.span)
	out = h.givenFirst.ReplaceAllString(out, h.span)
	return out
}

// initials reduces "Åsmund Folkestad" to "Å.F.".
func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(r)
			b.WriteByte('.')
			break
		}
	}
	return b.String()
}

// RenderHTML emits one fragment per publication, wrapped in the list
// container, with fragments separated by blank lines. The input order is
// preserved; callers pass the Parse output, which is already sorted by
// year descending.
func RenderHTML(pubs []types.Publication, highlightAuthor string) string {
	hl := NewHighlighter(highlightAuthor)

	parts := []string{`<div class="publications-list">`}
	for _, p := range pubs {
		parts = append(parts, formatEntry(p, hl))
	}
	parts = append(parts, "</div>")

	return strings.Join(parts, "\n\n")
}

func formatEntry(p types.Publication, hl *Highlighter) string {
	var lines []string

	title := p.Title
	if title == "" {
		title = "Untitled"
	}
	switch {
	case p.ArxivID != "":
		lines = append(lines, fmt.Sprintf(`<a href="%s%s" target="_blank" class="paper-title">%s</a>`, arxivAbsBase, p.ArxivID, title))
	case p.DOI != "":
		lines = append(lines, fmt.Sprintf(`<a href="%s%s" target="_blank" class="paper-title">%s</a>`, doiBase, p.DOI, title))
	default:
		lines = append(lines, fmt.Sprintf(`<span class="paper-title">%s</span>`, title))
	}

	if p.Authors != "" {
		lines = append(lines, fmt.Sprintf(`<div class="paper-authors">%s</div>`, hl.Apply(p.Authors)))
	}

	if venue := venueLine(p); venue != "" {
		lines = append(lines, fmt.Sprintf(`<div class="paper-venue">%s</div>`, venue))
	}

	return "<div class=\"paper-entry\">\n    " + strings.Join(lines, "\n    ") + "\n</div>"
}

// venueLine builds "journal [volume][, pages] (year)", falling back to
// "arXiv:id (year)" when no journal is set. An entry with neither venue
// nor year yields the empty string and renders no venue line.
func venueLine(p types.Publication) string {
	var parts []string

	if p.Journal != "" {
		venue := p.Journal
		if p.Volume != "" {
			venue += " " + p.Volume
		}
		if p.Pages != "" {
			venue += ", " + p.Pages
		}
		parts = append(parts, venue)
	} else if p.ArxivID != "" {
		parts = append(parts, "arXiv:"+p.ArxivID)
	}

	if p.Year != "" {
		parts = append(parts, "("+p.Year+")")
	}

	return strings.Join(parts, " ")
}
