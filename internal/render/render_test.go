package render

import (
	"encoding/csv"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/pep299/ilive-digest/internal/digest"
)

var fixtures = []digest.Item{
	{
		Title:       "Gold rallies as Fed signals cut",
		Link:        "https://example.com/central-bank/gold-rallies",
		PublishedNY: "2025-06-02 10:30",
		Tags:        []string{"#CENTRAL_BANK", "#XAU", "#Fed"},
		Summary:     "Spot gold climbed.\n• bullion bid\n• yields lower",
	},
	{
		Title:       "Oil slips — José's take",
		Link:        "https://example.com/energy/oil-slips",
		PublishedNY: "2025-06-02 09:15",
		Tags:        []string{"#ENERGY", "#OIL"},
		Summary:     "Crude fell on inventory build.",
	},
	{
		Title:       "Dateless note",
		Link:        "https://example.com/notes/dateless",
		PublishedNY: "",
		Tags:        []string{},
		Summary:     "",
	},
	{
		Title:       "Yen weakens",
		Link:        "https://example.com/forex/yen-weakens",
		PublishedNY: "2025-06-01 22:00",
		Tags:        []string{"#FOREX", "#USDJPY"},
		Summary:     "USD/JPY pushed higher.",
	},
}

func TestJSONRoundTrip(t *testing.T) {
	out := JSON(fixtures)

	var back []digest.Item
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("Rendered JSON does not parse: %v", err)
	}
	if !reflect.DeepEqual(back, fixtures) {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", back, fixtures)
	}
}

func TestJSONShape(t *testing.T) {
	out := JSON(fixtures)

	if !strings.Contains(out, "\n  ") {
		t.Error("Expected indented output")
	}
	// Non-ASCII preserved literally, not \u-escaped.
	if !strings.Contains(out, "José") {
		t.Error("Expected non-ASCII characters preserved literally")
	}
	if strings.Contains(out, `\u`) {
		t.Errorf("Expected no unicode escapes, got %q", out)
	}

	var generic []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &generic); err != nil {
		t.Fatal(err)
	}
	for _, obj := range generic {
		if len(obj) != 5 {
			t.Errorf("Expected exactly 5 fields per item, got %d: %v", len(obj), obj)
		}
		for _, field := range []string{"title", "link", "published_ny", "tags", "summary"} {
			if _, ok := obj[field]; !ok {
				t.Errorf("Missing field %q", field)
			}
		}
	}
}

func TestJSONEmpty(t *testing.T) {
	if out := JSON(nil); out != "[]" {
		t.Errorf("Expected empty array, got %q", out)
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(fixtures)

	if !strings.HasPrefix(out, "# InvestingLive Feed Digest (NY time)") {
		t.Errorf("Expected top-level heading, got %q", out[:50])
	}

	// One sub-heading per distinct date, in first-appearance order.
	first := strings.Index(out, "## 2025-06-02")
	second := strings.Index(out, "## 2025-06-01")
	unknown := strings.Index(out, "## Unknown")
	if first == -1 || second == -1 || unknown == -1 {
		t.Fatalf("Missing date headings in:\n%s", out)
	}
	if !(first < unknown && unknown < second) {
		t.Errorf("Expected headings in input order, got positions %d, %d, %d", first, unknown, second)
	}
	if strings.Count(out, "## 2025-06-02") != 1 {
		t.Error("Expected one heading per distinct date")
	}

	if !strings.Contains(out, "- **10:30** — [Gold rallies as Fed signals cut](https://example.com/central-bank/gold-rallies)  #CENTRAL_BANK #XAU #Fed") {
		t.Errorf("Missing item line in:\n%s", out)
	}
	if !strings.Contains(out, "- **--:--** — [Dateless note]") {
		t.Error("Expected placeholder time for dateless item")
	}

	// Summary bullets re-indented under the item.
	if !strings.Contains(out, "  - Spot gold climbed.\n    • bullion bid\n    • yields lower") {
		t.Errorf("Expected re-indented summary bullets in:\n%s", out)
	}

	// Empty summaries produce no nested line.
	if strings.Contains(out, "[Dateless note](https://example.com/notes/dateless)  \n  -") {
		t.Error("Expected no summary line for empty summary")
	}
}

func TestCSV(t *testing.T) {
	out := CSV(fixtures)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("Rendered CSV does not parse: %v", err)
	}

	header := []string{"published_ny", "title", "tags", "link", "summary"}
	if !reflect.DeepEqual(records[0], header) {
		t.Errorf("Expected header %v, got %v", header, records[0])
	}
	if len(records) != len(fixtures)+1 {
		t.Fatalf("Expected %d rows, got %d", len(fixtures)+1, len(records))
	}

	gold := records[1]
	if gold[2] != "#CENTRAL_BANK #XAU #Fed" {
		t.Errorf("Expected space-joined tags, got %q", gold[2])
	}
	if strings.Contains(gold[4], "\n") {
		t.Errorf("Expected newlines collapsed in summary, got %q", gold[4])
	}
	if gold[4] != "Spot gold climbed. • bullion bid • yields lower" {
		t.Errorf("Unexpected summary cell: %q", gold[4])
	}

	dateless := records[3]
	if dateless[0] != "" {
		t.Errorf("Expected empty published_ny cell, got %q", dateless[0])
	}
}

func TestCSVEmpty(t *testing.T) {
	out := CSV(nil)
	if out != "published_ny,title,tags,link,summary\n" {
		t.Errorf("Expected header only, got %q", out)
	}
}
