package feed

import (
	"time"

	"github.com/mmcdole/gofeed"
)

// Entry is the raw, un-normalized view of a single feed item as the
// markup provided it.
type Entry struct {
	Title           string
	Link            string
	Summary         string // description or content, may contain markup
	Published       string // string form, as given by the feed
	Updated         string
	PublishedParsed *time.Time
	UpdatedParsed   *time.Time
}

// Parser converts raw feed markup into entries
type Parser struct {
	parser *gofeed.Parser
}

// NewParser creates a new feed parser
func NewParser() *Parser {
	return &Parser{parser: gofeed.NewParser()}
}

// Parse extracts entries from raw RSS/Atom markup. Parsing is best
// effort: malformed markup yields however many entries could be
// recovered, never an error.
func (p *Parser) Parse(body string) []Entry {
	parsed, err := p.parser.ParseString(body)
	if err != nil || parsed == nil {
		return nil
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		entries = append(entries, Entry{
			Title:           item.Title,
			Link:            item.Link,
			Summary:         summary,
			Published:       item.Published,
			Updated:         item.Updated,
			PublishedParsed: item.PublishedParsed,
			UpdatedParsed:   item.UpdatedParsed,
		})
	}
	return entries
}
