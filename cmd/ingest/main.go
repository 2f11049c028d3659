package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"casefeed/internal/config"
	"casefeed/internal/ingest"
	mdb "casefeed/internal/mongo"
)

func init() {
	_ = godotenv.Load() // .env is optional
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	mc, err := mdb.NewClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.CasesColl)
	if err != nil {
		log.Fatal(err)
	}
	defer mc.Close(ctx)

	if err := ingest.RunImport(ctx, cfg, mc); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest done")
}
