package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"rentscope/server/internal/models"
)

// Column names as they appear in the rental dataset export. Optional columns
// may be missing from the header entirely; rows then carry empty values.
const (
	colState          = "State"
	colDistrict       = "District"
	colPropertyType   = "Standard Type"
	colRentPrice      = "Rent Price"
	colFurnishingType = "Furnishing Type"
	colPropertySize   = "Property Size"
	colBedroomCount   = "No of Bedroom"
	colBathroomCount  = "No of Bathroom"
	colExtractDate    = "Extract Date"
	colLatitude       = "Latitude"
	colLongitude      = "Longitude"
)

// CSVSource reads raw listings from a header-mapped CSV file.
type CSVSource struct {
	path   string
	logger *logrus.Logger
}

func NewCSVSource(path string, logger *logrus.Logger) *CSVSource {
	return &CSVSource{path: path, logger: logger}
}

func (s *CSVSource) Name() string {
	return fmt.Sprintf("csv:%s", s.path)
}

func (s *CSVSource) Load() ([]models.RawListing, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file %q: %w", s.path, err)
	}
	defer file.Close()

	return s.read(file)
}

func (s *CSVSource) read(r io.Reader) ([]models.RawListing, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv file %q is empty", s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colState, colDistrict, colPropertyType, colRentPrice} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("csv header is missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var listings []models.RawListing
	var malformed int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single mangled line does not fail the load.
			malformed++
			continue
		}

		listings = append(listings, models.RawListing{
			State:          field(record, colState),
			District:       field(record, colDistrict),
			PropertyType:   field(record, colPropertyType),
			RentPrice:      field(record, colRentPrice),
			FurnishingType: field(record, colFurnishingType),
			PropertySize:   field(record, colPropertySize),
			BedroomCount:   field(record, colBedroomCount),
			BathroomCount:  field(record, colBathroomCount),
			ExtractDate:    field(record, colExtractDate),
			Latitude:       field(record, colLatitude),
			Longitude:      field(record, colLongitude),
		})
	}

	if malformed > 0 {
		s.logger.WithField("rows", malformed).Warn("Skipped malformed csv rows")
	}
	s.logger.WithField("rows", len(listings)).Infof("Read raw listings from %s", s.Name())

	return listings, nil
}
