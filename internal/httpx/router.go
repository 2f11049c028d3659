package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"casefeed/internal/config"
	docs "casefeed/internal/docs"
	mdb "casefeed/internal/mongo"
)

// @title           CaseFeed API
// @version         0.1
// @description     Simulator case listing and ingest trigger
// @BasePath        /
func NewRouter(mc *mdb.Client, cfg config.Config) http.Handler {
	SetDeps(mc, cfg)
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		type resp struct {
			Status string    `json:"status"`
			Time   time.Time `json:"time"`
			DB     string    `json:"db"`
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp{
			Status: "ok",
			Time:   time.Now().UTC(),
			DB:     mc.DB.Name(),
		})
	})

	mux.HandleFunc("/casesList", casesList)
	mux.HandleFunc("/case", caseByID)

	rl := NewRateLimiter(10)
	mux.Handle("/ingest/run", LimitMiddleware(rl, requireAPIKey(ingestRun)))

	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		doc := docs.SwaggerInfo.ReadDoc()
		_, _ = w.Write([]byte(doc))
	})

	return mux
}
