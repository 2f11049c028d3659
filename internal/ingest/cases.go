package ingest

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	mdb "casefeed/internal/mongo"
)

// LoadCases parses the file at path as a JSON array of case objects.
// File order is preserved and nothing is validated or deduplicated; a
// top-level value that is not an array is a load failure.
func LoadCases(path string) ([]mdb.CaseDoc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cases []mdb.CaseDoc
	if err := json.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Printf(`{"msg":"cases-loaded","file":%q,"count":%d}`, path, len(cases))
	return cases, nil
}
