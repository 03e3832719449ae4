package digest

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	newlineRuns = regexp.MustCompile(`\s*\n\s*`)
	spaceRuns   = regexp.MustCompile(`\s{2,}`)
)

// htmlToText extracts the visible text of summary markup. List items keep
// a leading "\n• " marker so downstream renderers can re-indent them.
// Text fragments are trimmed and joined with single spaces, entities are
// unescaped, and whitespace runs around newlines collapse to a bare
// newline. Malformed markup degrades to "" rather than failing.
func htmlToText(markup string) string {
	if markup == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	doc.Find("script, style").Remove()

	var parts []string
	for _, node := range doc.Selection.Nodes {
		collectText(node, &parts)
	}

	text := strings.Join(parts, " ")
	text = html.UnescapeString(text)
	text = newlineRuns.ReplaceAllString(text, "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// collectText walks the parsed tree, accumulating trimmed text fragments
// and bullet markers for list items.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode && n.Data == "li" {
		*parts = append(*parts, "\n• ")
	}
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// truncate limits s to max characters, trimming trailing whitespace and
// appending an ellipsis when anything was cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max]), " \t\n") + "…"
}
