// @title           CaseFeed API
// @version         0.1
// @description     Simulator case listing and ingest trigger
// @BasePath        /
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"casefeed/internal/config"
	_ "casefeed/internal/docs"
	"casefeed/internal/httpx"
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

	c := cron.New()
	_, err = c.AddFunc(cfg.IngestSchedule, func() {
		if err := ingest.RunImport(ctx, cfg, mc); err != nil {
			log.Printf(`{"lvl":"error","msg":"ingest failed","err":%q}`, err.Error())
		} else {
			log.Printf(`{"lvl":"info","msg":"ingest completed"}`)
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	c.Start()
	defer c.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpx.NewRouter(mc, cfg),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf(`{"msg":"listening","port":%q}`, cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
