package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pep299/ilive-digest/internal/cache"
	"github.com/pep299/ilive-digest/internal/config"
	"github.com/pep299/ilive-digest/internal/digest"
	"github.com/pep299/ilive-digest/internal/feed"
	"github.com/pep299/ilive-digest/internal/fetcher"
)

// Interfaces for dependency injection and testing
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type FeedParser interface {
	Parse(body string) []feed.Entry
}

// Server holds the dependencies for the digest pipeline
type Server struct {
	config  *config.Config
	fetcher Fetcher
	parser  FeedParser
	store   cache.Store
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	store, err := cache.NewStore(cfg.CacheType, cfg.CacheFile, cfg.CacheBucket)
	if err != nil {
		return nil, fmt.Errorf("creating cache store: %w", err)
	}

	return &Server{
		config:  cfg,
		fetcher: fetcher.New(store),
		parser:  feed.NewParser(),
		store:   store,
	}, nil
}

// NewServerWithDeps creates a new server instance with provided dependencies (for testing)
func NewServerWithDeps(cfg *config.Config, f Fetcher, p FeedParser) *Server {
	return &Server{
		config:  cfg,
		fetcher: f,
		parser:  p,
	}
}

// SetupRoutes configures the HTTP routes
func (s *Server) SetupRoutes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/digest", s.digestHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	return router
}

// Digest runs the full pipeline for one feed URL: conditional fetch,
// parse, normalize, filter. An unchanged upstream (HTTP 304) yields an
// empty item list, not an error.
func (s *Server) Digest(ctx context.Context, url string, hours, limit int) ([]digest.Item, error) {
	body, err := s.fetcher.Fetch(ctx, url)
	if errors.Is(err, fetcher.ErrNotModified) {
		log.Printf("feed unchanged: %s", url)
		return []digest.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	entries := s.parser.Parse(body)
	items := digest.Normalize(entries)
	log.Printf("normalized %d entries from %s", len(items), url)

	return digest.Filter(items, hours, limit), nil
}

// Close releases server resources
func (s *Server) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
