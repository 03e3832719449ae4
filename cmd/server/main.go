package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pep299/ilive-digest/internal/config"
	"github.com/pep299/ilive-digest/internal/handlers"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("InvestingLive Digest Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  PORT              Server port (default: 8080)\n")
		fmt.Printf("  HOST              Server host (default: 0.0.0.0)\n")
		fmt.Printf("  FEED_URL          Default feed URL\n")
		fmt.Printf("  CACHE_TYPE        Revalidation cache: file, memory or cloud-storage (default: file)\n")
		fmt.Printf("  CACHE_FILE        Path of the file cache (default: .ilive_feed_cache.json)\n")
		fmt.Printf("  CACHE_BUCKET      Bucket for the cloud-storage cache\n")
		fmt.Printf("  REFRESH_SCHEDULE  Cron expression for background warm refreshes (empty disables)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("InvestingLive Digest Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create server
	server, err := handlers.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	defer server.Close()

	// Setup routes
	router := server.SetupRoutes()

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 3 * time.Minute, // a cold fetch can sit through capped backoffs
		IdleTimeout:  60 * time.Second,
	}

	// Optional background warm refresh keeps the revalidation cache primed
	// so interactive requests usually hit a 304 path.
	var scheduler *cron.Cron
	if cfg.RefreshSchedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.RefreshSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
			defer cancel()
			if _, err := server.Digest(ctx, cfg.FeedURL, 0, 0); err != nil {
				log.Printf("Warm refresh failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Failed to schedule warm refresh %q: %v", cfg.RefreshSchedule, err)
		}
		scheduler.Start()
		log.Printf("Scheduled warm refresh: %s", cfg.RefreshSchedule)
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("Starting server on %s:%s", cfg.Host, cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
