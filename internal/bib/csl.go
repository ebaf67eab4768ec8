package bib

import (
	"io"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/afolkest/afolkest.github.io/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names follow the CSL-JSON/CSL-YAML schema so that
// output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes publications as a CSL-YAML list to w.
func FormatCSL(pubs []types.Publication, w io.Writer) error {
	items := make([]CSLItem, len(pubs))
	for i, p := range pubs {
		items[i] = toCSLItem(p)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// nonSlugChars matches characters dropped when deriving an ID from a title.
var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// toCSLItem converts a Publication to a CSLItem. The item ID prefers the
// arXiv identifier, then the DOI, then a slug of the title.
func toCSLItem(p types.Publication) CSLItem {
	item := CSLItem{
		ID:             itemID(p),
		Type:           "article-journal",
		Title:          p.Title,
		ContainerTitle: p.Journal,
		Volume:         p.Volume,
		Page:           p.Pages,
		DOI:            p.DOI,
	}
	if p.Journal == "" {
		item.Type = "article"
	}

	for _, a := range strings.Split(p.Authors, " and ") {
		if name := parseAuthorName(a); name != (CSLName{}) {
			item.Author = append(item.Author, name)
		}
	}

	if y := p.YearNum(); y > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{y}}}
	}

	return item
}

func itemID(p types.Publication) string {
	switch {
	case p.ArxivID != "":
		return p.ArxivID
	case p.DOI != "":
		return p.DOI
	default:
		slug := nonSlugChars.ReplaceAllString(strings.ToLower(p.Title), "-")
		return strings.Trim(slug, "-")
	}
}

// parseAuthorName splits one author into CSL family/given parts. The
// bibliography's "Family, Given" form splits on the comma; otherwise the
// last space-separated token is the family name. Single-token names use
// the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if family, given, ok := strings.Cut(name, ","); ok {
		return CSLName{
			Family: strings.TrimSpace(family),
			Given:  strings.TrimSpace(given),
		}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
