package digest

import (
	"reflect"
	"testing"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "gold and fed in table order",
			text:     "Gold rallies as Fed signals cut",
			expected: []string{"#XAU", "#Fed"},
		},
		{
			name:     "table order beats text order",
			text:     "Powell comments sent gold higher",
			expected: []string{"#XAU", "#Fed"},
		},
		{
			name:     "no duplicates from repeated keywords",
			text:     "gold gold xau and more gold",
			expected: []string{"#XAU"},
		},
		{
			name:     "case insensitive",
			text:     "WTI and BRENT both fell",
			expected: []string{"#OIL"},
		},
		{
			name:     "word boundaries respected",
			text:     "goldilocks economy",
			expected: nil,
		},
		{
			name:     "hyphen variants",
			text:     "risk-off mood as 10-year yields climb",
			expected: []string{"#UST10Y", "#RISK"},
		},
		{
			name:     "currency pair with slash",
			text:     "eur/usd holds above 1.08",
			expected: []string{"#EURUSD"},
		},
		{
			name:     "no matches",
			text:     "weather was pleasant today",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTags(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractTags(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestSectionTag(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		expected string
	}{
		{"hyphenated segment", "https://example.com/central-bank/ecb-preview", "#CENTRAL_BANK"},
		{"single segment", "https://example.com/forex/", "#FOREX"},
		{"no path", "https://example.com", ""},
		{"root path", "https://example.com/", ""},
		{"empty link", "", ""},
		{"unparseable link", "http://exa mple.com/foo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SectionTag(tt.link); got != tt.expected {
				t.Errorf("SectionTag(%q) = %q, expected %q", tt.link, got, tt.expected)
			}
		})
	}
}
