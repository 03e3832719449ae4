package app

import (
	"log"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/pep299/ilive-digest/internal/handlers"
)

func init() {
	functionTarget := os.Getenv("FUNCTION_TARGET")
	if functionTarget == "" {
		functionTarget = "Digest"
	}

	log.Printf("Registering function: %s", functionTarget)
	functions.HTTP(functionTarget, handlers.HandleRequest)
}
