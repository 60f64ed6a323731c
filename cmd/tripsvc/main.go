package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/balamt/bagmytrip/internal/app"
	"github.com/balamt/bagmytrip/internal/config"
)

func main() {
	// .env is optional; deployment sets real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
