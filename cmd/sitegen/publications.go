// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afolkest/afolkest.github.io/internal/bib"
)

const (
	defaultBibPath         = "_bibliography/papers.bib"
	defaultHighlightAuthor = "Åsmund Folkestad"
)

var publicationsCmd = &cobra.Command{
	Use:   "publications",
	Short: "Render the bibliography as an HTML publication list",
	Long: `Publications parses the bibliography file, sorts entries by year (newest
first), and prints the HTML publication list to stdout, followed by a
comment reporting how many entries were rendered. Titles link to arXiv
when an eprint ID is present, otherwise to the DOI.

With --csl the same entries are emitted as CSL-YAML instead, for use
with Pandoc and reference managers.`,
	RunE: runPublications,
}

func init() {
	publicationsCmd.Flags().String("bib", "", "bibliography source file (default: "+defaultBibPath+")")
	publicationsCmd.Flags().String("highlight-author", "", "author name to replace with highlighted initials")
	publicationsCmd.Flags().Bool("csl", false, "emit CSL-YAML instead of HTML")

	rootCmd.AddCommand(publicationsCmd)
}

func runPublications(cmd *cobra.Command, args []string) error {
	bibFlag, _ := cmd.Flags().GetString("bib")
	highlightFlag, _ := cmd.Flags().GetString("highlight-author")
	csl, _ := cmd.Flags().GetBool("csl")

	bibPath := cfgString(bibFlag, "publications.bib", defaultBibPath)
	highlight := cfgString(highlightFlag, "publications.highlight_author", defaultHighlightAuthor)

	content, err := os.ReadFile(bibPath)
	if err != nil {
		return fmt.Errorf("reading bibliography: %w", err)
	}

	pubs := bib.Parse(string(content))

	if csl {
		return bib.FormatCSL(pubs, os.Stdout)
	}

	fmt.Println(bib.RenderHTML(pubs, highlight))
	fmt.Printf("\n\n<!-- Generated %d publications -->\n", len(pubs))
	return nil
}
