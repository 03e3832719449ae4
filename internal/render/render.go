// Package render serializes normalized items into the three digest
// output formats. All renderers are pure: no side effects, total over
// any valid item sequence.
package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pep299/ilive-digest/internal/digest"
)

// JSON renders items as an indented JSON array. Non-ASCII characters are
// preserved literally rather than escaped.
func JSON(items []digest.Item) string {
	if items == nil {
		items = []digest.Item{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		// A slice of plain structs cannot fail to encode.
		return "[]"
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Markdown renders items as a readable document: a top-level heading,
// one sub-heading per calendar date in order of first appearance, and a
// bullet per item with bold time, linked title and tag tokens. Summaries
// go on a nested line with embedded bullets re-indented.
func Markdown(items []digest.Item) string {
	var b strings.Builder
	b.WriteString("# InvestingLive Feed Digest (NY time)\n\n")

	currentDate := ""
	for _, it := range items {
		datePart := "Unknown"
		timePart := "--:--"
		if it.PublishedNY != "" {
			if date, clock, ok := strings.Cut(it.PublishedNY, " "); ok {
				datePart, timePart = date, clock
			}
		}

		if datePart != currentDate {
			currentDate = datePart
			fmt.Fprintf(&b, "\n## %s\n", currentDate)
		}

		title := strings.TrimSpace(strings.ReplaceAll(it.Title, "\n", " "))
		fmt.Fprintf(&b, "- **%s** — [%s](%s)  %s\n", timePart, title, it.Link, strings.Join(it.Tags, " "))

		if it.Summary != "" {
			summary := strings.ReplaceAll(it.Summary, "\n• ", "\n    • ")
			fmt.Fprintf(&b, "  - %s\n", summary)
		}
	}

	return strings.TrimSpace(b.String())
}

// CSV renders items as comma-separated rows under a fixed header. Tags
// are space-joined; summary newlines collapse to spaces.
func CSV(items []digest.Item) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"published_ny", "title", "tags", "link", "summary"})
	for _, it := range items {
		w.Write([]string{
			it.PublishedNY,
			it.Title,
			strings.Join(it.Tags, " "),
			it.Link,
			strings.TrimSpace(strings.ReplaceAll(it.Summary, "\n", " ")),
		})
	}
	w.Flush()

	return buf.String()
}
