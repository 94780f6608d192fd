package loader

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"rentscope/server/internal/models"
)

const listingColumns = `
        state,
        district,
        property_type,
        rent_price,
        furnishing_type,
        property_size,
        bedroom_count,
        bathroom_count,
        extract_date,
        latitude,
        longitude`

// SQLiteSource reads raw listings from a sqlite database, typically one
// produced by the import tool.
type SQLiteSource struct {
	path   string
	logger *logrus.Logger
}

func NewSQLiteSource(path string, logger *logrus.Logger) *SQLiteSource {
	return &SQLiteSource{path: path, logger: logger}
}

func (s *SQLiteSource) Name() string {
	return fmt.Sprintf("sqlite:%s", s.path)
}

func (s *SQLiteSource) Load() ([]models.RawListing, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", s.path, err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT " + listingColumns + " FROM listings")
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	listings, err := scanRawListings(rows)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("rows", len(listings)).Infof("Read raw listings from %s", s.Name())
	return listings, nil
}

// scanRawListings converts nullable columns back into the all-string raw row
// shape shared by every source.
func scanRawListings(rows *sql.Rows) ([]models.RawListing, error) {
	var listings []models.RawListing
	for rows.Next() {
		var state, district, propertyType, rentPrice sql.NullString
		var furnishing, size, bedrooms, bathrooms sql.NullString
		var extractDate, latitude, longitude sql.NullString

		err := rows.Scan(
			&state,
			&district,
			&propertyType,
			&rentPrice,
			&furnishing,
			&size,
			&bedrooms,
			&bathrooms,
			&extractDate,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}

		listings = append(listings, models.RawListing{
			State:          state.String,
			District:       district.String,
			PropertyType:   propertyType.String,
			RentPrice:      rentPrice.String,
			FurnishingType: furnishing.String,
			PropertySize:   size.String,
			BedroomCount:   bedrooms.String,
			BathroomCount:  bathrooms.String,
			ExtractDate:    extractDate.String,
			Latitude:       latitude.String,
			Longitude:      longitude.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing rows: %w", err)
	}
	return listings, nil
}
