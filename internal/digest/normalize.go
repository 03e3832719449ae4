package digest

import (
	"sort"
	"strings"
	"time"
	// Embedded zone database so America/New_York resolves on hosts
	// without tzdata installed.
	_ "time/tzdata"

	"golang.org/x/net/html"

	"github.com/pep299/ilive-digest/internal/feed"
)

// MaxSummaryChars is the display length limit for summaries, excluding
// the ellipsis appended on truncation.
const MaxSummaryChars = 220

const timeLayout = "2006-01-02 15:04"

var nyZone = mustLoadNY()

func mustLoadNY() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("loading America/New_York: " + err.Error())
	}
	return loc
}

// dateLayouts are tried in order against the feed's string timestamp.
// Layouts without a zone produce UTC, matching the assume-UTC rule for
// offset-less timestamps.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize converts raw entries into Items sorted by recency (entries
// without a resolvable date sort last). It never fails: malformed fields
// degrade to empty values.
func Normalize(entries []feed.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, normalizeEntry(e))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedNY > items[j].PublishedNY
	})
	return items
}

func normalizeEntry(e feed.Entry) Item {
	title := strings.TrimSpace(html.UnescapeString(e.Title))
	link := strings.TrimSpace(e.Link)
	summary := truncate(htmlToText(e.Summary), MaxSummaryChars)

	var publishedNY string
	if t, ok := resolveTime(e); ok {
		publishedNY = t.In(nyZone).Format(timeLayout)
	}

	tags := ExtractTags(title + " " + summary)
	if sec := SectionTag(link); sec != "" && !containsTag(tags, sec) {
		tags = append([]string{sec}, tags...)
	}
	if tags == nil {
		tags = []string{}
	}

	return Item{
		Title:       title,
		Link:        link,
		PublishedNY: publishedNY,
		Tags:        tags,
		Summary:     summary,
	}
}

// resolveTime picks the publish time for an entry: the published string
// first, then updated, parsed against the layout table; failing that,
// the structured time the parser recovered, treated as UTC.
func resolveTime(e feed.Entry) (time.Time, bool) {
	raw := e.Published
	if raw == "" {
		raw = e.Updated
	}

	if raw != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, true
			}
		}
	}

	if e.PublishedParsed != nil {
		return e.PublishedParsed.UTC(), true
	}
	if e.UpdatedParsed != nil {
		return e.UpdatedParsed.UTC(), true
	}
	return time.Time{}, false
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
