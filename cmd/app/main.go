package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/AviranAbady/sales-api/internal/app"
	"github.com/AviranAbady/sales-api/internal/config"
	"github.com/AviranAbady/sales-api/pkg/shutdown"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	path := os.Getenv("CONFIG_PATH")

	cfg := config.MustLoad(path)

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err = a.Run(ctx); err != nil {
		log.Fatalf("failed to run application: %v", err)
	}
}
