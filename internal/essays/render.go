// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package essays

import (
	"fmt"
	"html"
	"strings"

	"github.com/afolkest/afolkest.github.io/pkg/types"
)

// RenderCards emits one essay-card fragment per post, in input order.
// Post text comes from the network, so it is escaped on the way into
// the markup.
func RenderCards(posts []types.Post) string {
	cards := make([]string, len(posts))
	for i, p := range posts {
		cards[i] = renderCard(p)
	}
	return strings.Join(cards, "\n")
}

func renderCard(p types.Post) string {
	title := html.EscapeString(p.Title)

	var img string
	if p.Image != "" {
		img = fmt.Sprintf(`<img src="%s" alt="%s">`, html.EscapeString(p.Image), title)
	}

	var date string
	if p.Date != "" {
		date = fmt.Sprintf("\n                    <p class=\"essay-card-date\">%s</p>", p.Date)
	}

	return fmt.Sprintf(`            <a href="%s" target="_blank" class="essay-card">
                %s
                <div class="essay-card-text">
                    <h3>%s</h3>%s
                    <p>%s</p>
                </div>
            </a>`,
		html.EscapeString(p.Link), img, title, date, html.EscapeString(p.Description))
}
