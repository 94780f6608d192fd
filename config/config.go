package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Source kinds accepted by Data.Source.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

type Config struct {
	Server struct {
		// Port the HTTP API listens on
		Port int `env:"SERVER_PORT" envDefault:"5250"`
	}

	Data struct {
		// Which record source to load the snapshot from: csv, sqlite or postgres
		Source string `env:"DATA_SOURCE" envDefault:"csv"`

		// Path to the listings CSV file (csv source)
		CSVPath string `env:"DATA_CSV_PATH" envDefault:"data/rental_data.csv"`

		// Path to the sqlite database file (sqlite source, also import target)
		SQLitePath string `env:"DATA_SQLITE_PATH" envDefault:"database/rentals.db"`

		// PostgreSQL connection string (postgres source)
		PostgresDSN string `env:"DATA_POSTGRES_DSN"`
	}

	Map struct {
		// Fallback map center when no listing in a result has coordinates
		CenterLat float64 `env:"MAP_CENTER_LAT" envDefault:"3.1319"`
		CenterLng float64 `env:"MAP_CENTER_LNG" envDefault:"101.6841"`
	}
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine; system env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.Data.Source {
	case SourceCSV, SourceSQLite, SourcePostgres:
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q", cfg.Data.Source)
	}

	return cfg, nil
}
