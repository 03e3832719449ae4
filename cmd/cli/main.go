package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pep299/ilive-digest/internal/config"
	"github.com/pep299/ilive-digest/internal/handlers"
	"github.com/pep299/ilive-digest/internal/render"
)

func main() {
	var (
		format = flag.String("format", "json", "Output format: json, markdown or csv")
		hours  = flag.Int("hours", 0, "Only keep items newer than this many hours (0 = no window)")
		limit  = flag.Int("limit", 40, "Maximum number of items (0 = no cap)")
		url    = flag.String("url", "", "Feed URL (default: FEED_URL from the environment)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	feedURL := *url
	if feedURL == "" {
		feedURL = cfg.FeedURL
	}

	server, err := handlers.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create pipeline: %v", err)
	}
	defer server.Close()

	items, err := server.Digest(context.Background(), feedURL, *hours, *limit)
	if err != nil {
		log.Fatalf("Failed to build digest: %v", err)
	}

	switch *format {
	case "json":
		fmt.Println(render.JSON(items))
	case "markdown":
		fmt.Println(render.Markdown(items))
	case "csv":
		fmt.Print(render.CSV(items))
	default:
		fmt.Fprintf(os.Stderr, "unsupported format %q (valid: json, markdown, csv)\n", *format)
		os.Exit(2)
	}
}
