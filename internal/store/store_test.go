package store

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentscope/server/internal/loader"
	"rentscope/server/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentals.db")

	db, err := Open(path, testLogger())
	require.NoError(t, err)
	defer db.Close()

	batch := []Listing{
		FromRaw(models.RawListing{
			State: "KL", District: "Ampang", PropertyType: "Condo",
			RentPrice: "1500", FurnishingType: "Fully Furnished",
			Latitude: "3.1569", Longitude: "101.7123",
		}),
		FromRaw(models.RawListing{
			State: "KL", District: "Ampang", PropertyType: "Studio",
			RentPrice: "1200",
		}),
	}
	require.NoError(t, db.InsertBatch(batch))

	count, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The sqlite source reads back what the importer wrote.
	source := loader.NewSQLiteSource(path, testLogger())
	raw, err := source.Load()
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, "Condo", raw[0].PropertyType)
	assert.Equal(t, "1500", raw[0].RentPrice)
	assert.Equal(t, "Fully Furnished", raw[0].FurnishingType)
	assert.Equal(t, "", raw[1].Latitude)
}

func TestStoreReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentals.db")

	db, err := Open(path, testLogger())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.InsertBatch([]Listing{
		FromRaw(models.RawListing{State: "KL", District: "Ampang", PropertyType: "Condo", RentPrice: "1500"}),
	}))
	require.NoError(t, db.Reset())

	count, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
