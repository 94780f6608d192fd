package loader

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"rentscope/server/internal/models"
)

// PostgresSource reads raw listings from a PostgreSQL listings table with the
// same column layout as the sqlite schema.
type PostgresSource struct {
	dsn    string
	logger *logrus.Logger
}

func NewPostgresSource(dsn string, logger *logrus.Logger) *PostgresSource {
	return &PostgresSource{dsn: dsn, logger: logger}
}

func (s *PostgresSource) Name() string {
	return "postgres"
}

func (s *PostgresSource) Load() ([]models.RawListing, error) {
	if s.dsn == "" {
		return nil, fmt.Errorf("postgres source selected but DATA_POSTGRES_DSN is empty")
	}

	db, err := sql.Open("postgres", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	rows, err := db.Query("SELECT " + listingColumns + " FROM listings")
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	listings, err := scanRawListings(rows)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("rows", len(listings)).Info("Read raw listings from postgres")
	return listings, nil
}
