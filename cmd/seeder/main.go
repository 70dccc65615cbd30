package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"shoppinglist/internal/app/bootstrap"
)

// Seeder process entrypoint: drops all collections and loads the dummy
// fixture, then exits.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.BuildSeeder()
	if err != nil {
		log.Fatalf("build seeder: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close seeder: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run seeder: %v", err)
	}
}
