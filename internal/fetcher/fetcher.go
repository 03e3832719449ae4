package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pep299/ilive-digest/internal/cache"
)

const (
	defaultMaxRetries = 5
	defaultTimeout    = 15 * time.Second
	initialBackoff    = 1 * time.Second
	maxBackoff        = 30 * time.Second

	// Some feed hosts reject non-browser user agents.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	acceptHeader = "application/rss+xml, application/xml;q=0.9, */*;q=0.8"
)

// ErrNotModified is returned when the upstream resource is unchanged since
// the last successful fetch (HTTP 304). It is an outcome, not a failure:
// callers should treat it as "no new items".
var ErrNotModified = errors.New("feed not modified")

// Client performs conditional GETs against a feed URL, consulting and
// updating the revalidation store.
type Client struct {
	httpClient *http.Client
	store      cache.Store
	maxRetries int
	sleep      func(time.Duration)
}

// New creates a fetcher backed by the given revalidation store
func New(store cache.Store) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		store:      store,
		maxRetries: defaultMaxRetries,
		sleep:      time.Sleep,
	}
}

// Fetch retrieves the raw feed body from url.
//
// The stored ETag and Last-Modified values are attached as conditional
// headers. A 304 yields ErrNotModified and leaves the store untouched.
// A 200 overwrites the stored record and returns the body. 429 and 503
// are retried with exponential backoff (doubled, capped at 30s); every
// other status and any transport error is retried on the same counter
// until the attempts run out.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	rec := c.store.Load(ctx)

	backoff := initialBackoff
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		resp, err := c.get(ctx, url, rec)
		if err != nil {
			if attempt == c.maxRetries {
				return "", fmt.Errorf("fetching %s: %w", url, err)
			}
			lastErr = err
			c.sleep(backoff)
			backoff = nextBackoff(backoff)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusNotModified:
			resp.Body.Close()
			return "", ErrNotModified

		case resp.StatusCode == http.StatusOK:
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				if attempt == c.maxRetries {
					return "", fmt.Errorf("reading feed body: %w", err)
				}
				lastErr = err
				c.sleep(backoff)
				backoff = nextBackoff(backoff)
				continue
			}

			newRec := cache.Record{
				ETag:         firstNonEmpty(resp.Header.Get("ETag"), rec.ETag),
				LastModified: firstNonEmpty(resp.Header.Get("Last-Modified"), rec.LastModified),
				FetchedAt:    time.Now().UTC(),
			}
			// Cache persistence is best effort
			if err := c.store.Save(ctx, newRec); err != nil {
				log.Printf("saving revalidation record: %v", err)
			}
			return string(body), nil

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable:
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			c.sleep(backoff + time.Duration(attempt)*100*time.Millisecond)
			backoff = nextBackoff(backoff)

		default:
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			if attempt == c.maxRetries {
				return "", fmt.Errorf("fetching %s: %w", url, lastErr)
			}
			c.sleep(backoff)
			backoff = nextBackoff(backoff)
		}
	}

	if lastErr == nil {
		lastErr = errors.New("no attempts made")
	}
	return "", fmt.Errorf("fetching %s after %d attempts: %w", url, c.maxRetries, lastErr)
}

func (c *Client) get(ctx context.Context, url string, rec cache.Record) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	if rec.ETag != "" {
		req.Header.Set("If-None-Match", rec.ETag)
	}
	if rec.LastModified != "" {
		req.Header.Set("If-Modified-Since", rec.LastModified)
	}

	return c.httpClient.Do(req)
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
