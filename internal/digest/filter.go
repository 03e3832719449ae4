package digest

import "time"

// Filter applies the time-window cutoff and result-count limit. Items
// are assumed sorted by recency already. Zero hours means no window;
// under a window, items without a timestamp are dropped. Zero limit
// means no cap.
func Filter(items []Item, hours, limit int) []Item {
	if hours > 0 {
		cutoff := time.Now().In(nyZone).Add(-time.Duration(hours) * time.Hour)
		kept := make([]Item, 0, len(items))
		for _, it := range items {
			if it.PublishedNY == "" {
				continue
			}
			t, err := time.ParseInLocation(timeLayout, it.PublishedNY, nyZone)
			if err != nil {
				continue
			}
			if !t.Before(cutoff) {
				kept = append(kept, it)
			}
		}
		items = kept
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
