package main

import (
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/pep299/ilive-digest/internal/handlers"
)

func init() {
	// Register HTTP function for Cloud Functions deployments
	functions.HTTP("Digest", handlers.HandleRequest)
}

func main() {
	// This main function is required for Cloud Functions
	// The actual function registration happens in init()
}
