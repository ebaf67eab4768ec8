// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bib parses a bibliography file and renders it as an HTML
// publication list.
package bib

import (
	"regexp"
	"sort"
	"strings"

	"github.com/afolkest/afolkest.github.io/pkg/types"
)

// latexEscapes maps LaTeX escape sequences to their Unicode equivalents.
// The table is applied in order and is order-sensitive: future entries
// must not produce output that an earlier entry's sequence matches.
var latexEscapes = []struct{ seq, repl string }{
	{`\r{A}`, "Å"},
	{`\AA{}`, "Å"},
	{`\'e`, "é"},
	{`\v{s}`, "š"},
}

// braceStripper removes grouping braces left over after unescaping.
var braceStripper = strings.NewReplacer("{", "", "}", "")

// Unescape resolves the known LaTeX escape sequences in s.
func Unescape(s string) string {
	for _, e := range latexEscapes {
		s = strings.ReplaceAll(s, e.seq, e.repl)
	}
	return s
}

// Clean unescapes LaTeX sequences and strips all grouping braces.
func Clean(s string) string {
	return braceStripper.Replace(Unescape(s))
}

// entryPattern matches one "@type{...}" block, non-greedily up to the
// next "@" or end of text.
var entryPattern = regexp.MustCompile(`(?s)@\w+\{[^@]+\}`)

// fieldPattern builds a matcher for "name = {value}" or `name = "value"`.
func fieldPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + name + `\s*=\s*["{]([^"}]+)["}]`)
}

var (
	titlePattern   = fieldPattern("title")
	authorPattern  = fieldPattern("author")
	journalPattern = fieldPattern("journal")
	volumePattern  = fieldPattern("volume")
	pagesPattern   = fieldPattern("pages")
	eprintPattern  = fieldPattern("eprint")
	doiPattern     = fieldPattern("doi")

	yearPattern = regexp.MustCompile(`year\s*=\s*["{](\d{4})["}]`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// collapseSpace trims s and collapses interior whitespace runs to single
// spaces, so values wrapped across source lines render on one line.
func collapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Parse extracts publication records from raw bibliography text and
// returns them sorted by year, newest first. Missing fields are not
// errors; a block yielding no fields at all is dropped. Parse never
// fails on malformed input.
func Parse(content string) []types.Publication {
	// Resolve escapes before splitting, in case a sequence spans a
	// field boundary.
	content = Unescape(content)

	var pubs []types.Publication
	for _, entry := range entryPattern.FindAllString(content, -1) {
		p := parseEntry(entry)
		if p.IsEmpty() {
			continue
		}
		pubs = append(pubs, p)
	}

	sort.SliceStable(pubs, func(i, j int) bool {
		return pubs[i].YearNum() > pubs[j].YearNum()
	})
	return pubs
}

func parseEntry(entry string) types.Publication {
	var p types.Publication

	if m := titlePattern.FindStringSubmatch(entry); m != nil {
		p.Title = Clean(collapseSpace(m[1]))
	}
	if m := authorPattern.FindStringSubmatch(entry); m != nil {
		p.Authors = Clean(collapseSpace(m[1]))
	}
	if m := yearPattern.FindStringSubmatch(entry); m != nil {
		p.Year = m[1]
	}
	if m := journalPattern.FindStringSubmatch(entry); m != nil {
		p.Journal = Clean(collapseSpace(m[1]))
	}
	if m := volumePattern.FindStringSubmatch(entry); m != nil {
		p.Volume = strings.TrimSpace(m[1])
	}
	if m := pagesPattern.FindStringSubmatch(entry); m != nil {
		p.Pages = strings.TrimSpace(m[1])
	}
	if m := eprintPattern.FindStringSubmatch(entry); m != nil {
		p.ArxivID = strings.TrimSpace(m[1])
	}
	if m := doiPattern.FindStringSubmatch(entry); m != nil {
		p.DOI = strings.TrimSpace(m[1])
	}

	return p
}
