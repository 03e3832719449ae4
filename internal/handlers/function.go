package handlers

import (
	"log"
	"net/http"

	"github.com/pep299/ilive-digest/internal/config"
)

// HandleRequest handles a single HTTP request (for Cloud Functions)
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	server, err := NewServer(cfg)
	if err != nil {
		log.Printf("Failed to create server: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer server.Close()

	server.SetupRoutes().ServeHTTP(w, r)
}
