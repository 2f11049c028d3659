package config

import (
	"os"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	CasesColl      string
	CasesFile      string
	IngestSchedule string
	IngestAPIKey   string
	ProbeURL       string
	ProbeOut       string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "test"),
		CasesColl:      getenv("MONGO_COLLECTION", "cases"),
		CasesFile:      getenv("CASES_FILE", "cases/case_100.json"),
		IngestSchedule: getenv("INGEST_SCHEDULE", "@every 24h"),
		IngestAPIKey:   getenv("INGEST_API_KEY", ""), // empty keeps /ingest/run disabled
		ProbeURL:       getenv("PROBE_URL", "http://localhost:5173/"),
		ProbeOut:       getenv("PROBE_OUT", "verification/verification.png"),
	}
}
