package ingest

import (
	"context"
	"log"

	"casefeed/internal/config"
	mdb "casefeed/internal/mongo"
)

// RunImport loads the configured cases file and pushes everything to the
// store in one bulk insert. A load failure skips the insert entirely.
func RunImport(ctx context.Context, cfg config.Config, mc *mdb.Client) error {
	cases, err := LoadCases(cfg.CasesFile)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		log.Printf(`{"msg":"cases-import-empty","file":%q}`, cfg.CasesFile)
		return nil
	}

	if err := mc.EnsureCaseIndexes(ctx); err != nil {
		return err
	}
	n, err := mc.InsertCases(ctx, cases)
	if err != nil {
		return err
	}
	log.Printf(`{"msg":"cases-import-done","inserted":%d}`, n)
	return nil
}
