package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"rentscope/server/config"
	"rentscope/server/internal/loader"
	"rentscope/server/internal/store"
)

const importBatchSize = 500

// Imports the listings CSV into the sqlite database so the server can be
// pointed at DATA_SOURCE=sqlite instead of re-parsing the CSV on every start.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	source := loader.NewCSVSource(cfg.Data.CSVPath, logger)
	raw, err := source.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to read listings CSV")
	}
	if len(raw) == 0 {
		logger.Fatal("Listings CSV contains no rows")
	}

	db, err := store.Open(cfg.Data.SQLitePath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open sqlite database")
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		logger.WithError(err).Fatal("Failed to clear previous import")
	}

	for start := 0; start < len(raw); start += importBatchSize {
		end := start + importBatchSize
		if end > len(raw) {
			end = len(raw)
		}

		batch := make([]store.Listing, 0, end-start)
		for _, r := range raw[start:end] {
			batch = append(batch, store.FromRaw(r))
		}

		if err := db.InsertBatch(batch); err != nil {
			logger.WithError(err).Fatal("Failed to import listings batch")
		}
		logger.Infof("Imported %d/%d listings", end, len(raw))
	}

	count, err := db.Count()
	if err != nil {
		logger.WithError(err).Fatal("Failed to verify import")
	}
	logger.WithField("listings", count).Infof("Import into %s complete", cfg.Data.SQLitePath)
}
