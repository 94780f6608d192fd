package loader

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"rentscope/server/config"
	"rentscope/server/internal/models"
)

// Source produces the raw listing rows the snapshot is built from. A source
// that cannot be read, or that yields zero rows, is a fatal startup condition
// for the caller; sources themselves just report the error.
type Source interface {
	Name() string
	Load() ([]models.RawListing, error)
}

// FromConfig picks the record source selected by DATA_SOURCE.
func FromConfig(cfg *config.Config, logger *logrus.Logger) (Source, error) {
	switch cfg.Data.Source {
	case config.SourceCSV:
		return NewCSVSource(cfg.Data.CSVPath, logger), nil
	case config.SourceSQLite:
		return NewSQLiteSource(cfg.Data.SQLitePath, logger), nil
	case config.SourcePostgres:
		return NewPostgresSource(cfg.Data.PostgresDSN, logger), nil
	default:
		return nil, fmt.Errorf("unsupported record source %q", cfg.Data.Source)
	}
}
