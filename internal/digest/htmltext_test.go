package digest

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "plain text passes through",
			markup:   "just plain text",
			expected: "just plain text",
		},
		{
			name:     "tags stripped and fragments joined",
			markup:   "<p>Spot gold <b>climbed</b> today.</p>",
			expected: "Spot gold climbed today.",
		},
		{
			name:     "list items get bullet markers",
			markup:   "<p>intro</p><ul><li>alpha</li><li>beta</li></ul>",
			expected: "intro\n• alpha\n• beta",
		},
		{
			name:     "ordered lists too",
			markup:   "<ol><li>first</li><li>second</li></ol>",
			expected: "\n• first\n• second",
		},
		{
			name:     "entities unescaped",
			markup:   "<p>Fish &amp; chips &gt; burgers</p>",
			expected: "Fish & chips > burgers",
		},
		{
			name:     "double encoded entities",
			markup:   "<p>A &amp;amp; B</p>",
			expected: "A & B",
		},
		{
			name:     "whitespace collapsed",
			markup:   "<p>too     many\t\tspaces</p>",
			expected: "too many spaces",
		},
		{
			name:     "script and style dropped",
			markup:   "<p>visible</p><script>alert(1)</script><style>p{}</style>",
			expected: "visible",
		},
		{
			name:     "empty input",
			markup:   "",
			expected: "",
		},
		{
			name:     "markup only",
			markup:   "<div><span></span></div>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlToText(tt.markup); got != tt.expected {
				t.Errorf("htmlToText(%q) = %q, expected %q", tt.markup, got, tt.expected)
			}
		})
	}
}

func TestHTMLToTextNeverPanics(t *testing.T) {
	inputs := []string{
		"<ul><li>unclosed",
		"<<<>>>",
		"<p>" + strings.Repeat("<div>", 100),
		"&#xZZ; busted entity",
	}
	for _, in := range inputs {
		_ = htmlToText(in) // must not panic
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"exactly max untouched", "hello", 5, "hello"},
		{"cut with ellipsis", "hello world", 8, "hello wo…"},
		{"trailing space trimmed before ellipsis", "hello world", 6, "hello…"},
		{"multibyte runes counted as characters", "héllo wörld", 7, "héllo w…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.max); got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, expected %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestTruncateBound(t *testing.T) {
	long := strings.Repeat("word and more ", 50)
	got := truncate(long, MaxSummaryChars)

	if n := utf8.RuneCountInString(got); n > MaxSummaryChars+1 {
		t.Errorf("Expected at most %d characters, got %d", MaxSummaryChars+1, n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected truncated summary to end with ellipsis, got %q", got[len(got)-10:])
	}
}
