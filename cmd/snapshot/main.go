package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"casefeed/internal/config"
	"casefeed/internal/probe"
)

func init() {
	_ = godotenv.Load() // .env is optional
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	err := probe.Capture(ctx, probe.Options{
		URL:     cfg.ProbeURL,
		OutPath: cfg.ProbeOut,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Println("snapshot done")
}
