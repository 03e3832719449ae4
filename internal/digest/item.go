package digest

// Item is one normalized feed entry, ready to render. Items are built
// fresh on every fetch; no identity persists across fetches.
type Item struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	PublishedNY string   `json:"published_ny"` // "YYYY-MM-DD HH:MM" in America/New_York, empty when unknown
	Tags        []string `json:"tags"`
	Summary     string   `json:"summary"`
}
