package digest

import (
	"net/url"
	"regexp"
	"strings"
)

// keywordTag pairs a topic pattern with its tag token.
type keywordTag struct {
	pattern *regexp.Regexp
	tag     string
}

// keywordTags is the fixed topic table. It is a slice, not a map:
// iteration order decides tag order, so it must be deterministic.
// Patterns are matched against lowercased text.
var keywordTags = []keywordTag{
	{regexp.MustCompile(`\b(xau|gold)\b`), "#XAU"},
	{regexp.MustCompile(`\b(silver|xag)\b`), "#XAG"},
	{regexp.MustCompile(`\b(dxy|us dollar|greenback|usd index|dollar index)\b`), "#DXY"},
	{regexp.MustCompile(`\b(eur/usd|eurusd|euro)\b`), "#EURUSD"},
	{regexp.MustCompile(`\b(usd/jpy|usdjpy|yen)\b`), "#USDJPY"},
	{regexp.MustCompile(`\b(gbp/usd|gbpusd|sterling|pound)\b`), "#GBPUSD"},
	{regexp.MustCompile(`\b(wti|brent|crude|oil)\b`), "#OIL"},
	{regexp.MustCompile(`\b(copper)\b`), "#HG"},
	{regexp.MustCompile(`\b(10[- ]?year|10y|ust10|ust 10|ten[- ]year|treasury yield|yields?)\b`), "#UST10Y"},
	{regexp.MustCompile(`\b(2[- ]?year|2y|ust2)\b`), "#UST2Y"},
	{regexp.MustCompile(`\b(cpi|ppi|pce|core pce|payrolls|nfp|unemployment)\b`), "#DATA"},
	{regexp.MustCompile(`\b(fed|powell|fomc|dot plot|hike|cut|rate decision)\b`), "#Fed"},
	{regexp.MustCompile(`\b(ecb|lagarde|boj|boe|snb|rba|boc)\b`), "#CB"},
	{regexp.MustCompile(`\b(risk[- ]?on|risk[- ]?off|sentiment)\b`), "#RISK"},
}

// ExtractTags returns the tags whose patterns match text, in table order,
// without duplicates.
func ExtractTags(text string) []string {
	lower := strings.ToLower(text)

	var tags []string
	seen := make(map[string]bool)
	for _, kt := range keywordTags {
		if kt.pattern.MatchString(lower) && !seen[kt.tag] {
			seen[kt.tag] = true
			tags = append(tags, kt.tag)
		}
	}
	return tags
}

// SectionTag derives a tag from the first path segment of the article
// URL: hyphens become underscores, upper-cased, prefixed with "#".
// Returns "" when the URL has no usable path.
func SectionTag(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}

	path := strings.Trim(u.Path, "/")
	first, _, _ := strings.Cut(path, "/")
	if first == "" {
		return ""
	}
	return strings.ToUpper("#" + strings.ReplaceAll(first, "-", "_"))
}
