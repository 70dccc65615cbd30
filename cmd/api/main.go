package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"shoppinglist/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load .env + config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("build api: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close api: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run api: %v", err)
	}
}
