package dataset

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"rentscope/server/internal/models"
)

// ErrNoValidRecords means the raw source produced nothing the engine can
// serve queries against. Startup must not proceed past this.
var ErrNoValidRecords = errors.New("no valid listings in record source")

// Availability records which optional columns carry at least one value
// anywhere in the dataset. Feature and trend logic consults these flags
// instead of re-probing the records per request; a column with no values at
// all is silently omitted from derived output.
type Availability struct {
	FurnishingType bool
	PropertySize   bool
	BedroomCount   bool
	BathroomCount  bool
	ExtractDate    bool
}

// Snapshot is the immutable in-memory dataset plus its derived indexes.
// It is built exactly once at startup and shared read-only by all requests;
// nothing mutates it afterwards, so reads need no locking.
type Snapshot struct {
	Listings      []models.Listing
	PropertyTypes []string                       // sorted distinct catalog
	LocationTree  map[string]map[string][]string // state -> district -> sorted types
	Availability  Availability
}

// dateLayouts are tried in order when parsing extract dates. An unparseable
// date leaves the field nil, which only excludes the record from trends.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
}

// Build validates and indexes raw listings into a Snapshot. Records missing
// state, district, property type or a numeric rent are dropped; records
// missing only coordinates stay valid for every non-map aggregation.
func Build(raw []models.RawListing, logger *logrus.Logger) (*Snapshot, error) {
	snap := &Snapshot{
		LocationTree: make(map[string]map[string][]string),
	}

	var dropped int
	for _, r := range raw {
		listing, ok := cleanListing(r)
		if !ok {
			dropped++
			continue
		}
		snap.Listings = append(snap.Listings, listing)

		if listing.FurnishingType != nil {
			snap.Availability.FurnishingType = true
		}
		if listing.PropertySize != nil {
			snap.Availability.PropertySize = true
		}
		if listing.BedroomCount != nil {
			snap.Availability.BedroomCount = true
		}
		if listing.BathroomCount != nil {
			snap.Availability.BathroomCount = true
		}
		if listing.ExtractDate != nil {
			snap.Availability.ExtractDate = true
		}
	}

	if len(snap.Listings) == 0 {
		return nil, ErrNoValidRecords
	}

	snap.buildIndexes()

	logger.WithFields(logrus.Fields{
		"listings":       len(snap.Listings),
		"dropped":        dropped,
		"property_types": len(snap.PropertyTypes),
		"states":         len(snap.LocationTree),
	}).Info("Dataset snapshot built")

	return snap, nil
}

// cleanListing applies the required-field rule and type coercion to one raw
// row. ok is false when the row must be dropped.
func cleanListing(r models.RawListing) (models.Listing, bool) {
	listing := models.Listing{
		State:        strings.TrimSpace(r.State),
		District:     strings.TrimSpace(r.District),
		PropertyType: strings.TrimSpace(r.PropertyType),
	}
	if listing.State == "" || listing.District == "" || listing.PropertyType == "" {
		return models.Listing{}, false
	}

	rent, ok := parseNumber(r.RentPrice)
	if !ok {
		return models.Listing{}, false
	}
	listing.RentPrice = rent

	if furnishing := strings.TrimSpace(r.FurnishingType); furnishing != "" {
		listing.FurnishingType = &furnishing
	}
	if size, ok := parseNumber(r.PropertySize); ok {
		listing.PropertySize = &size
	}
	if beds, ok := parseNumber(r.BedroomCount); ok {
		listing.BedroomCount = &beds
	}
	if baths, ok := parseNumber(r.BathroomCount); ok {
		listing.BathroomCount = &baths
	}
	if date, ok := parseDate(r.ExtractDate); ok {
		listing.ExtractDate = &date
	}

	// Coordinates are only valid as a pair.
	if lat, ok := parseNumber(r.Latitude); ok {
		if lng, ok := parseNumber(r.Longitude); ok {
			listing.Latitude = &lat
			listing.Longitude = &lng
		}
	}

	return listing, true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// buildIndexes derives the property type catalog and the location tree.
func (s *Snapshot) buildIndexes() {
	typeSet := make(map[string]struct{})
	treeSets := make(map[string]map[string]map[string]struct{})

	for _, l := range s.Listings {
		typeSet[l.PropertyType] = struct{}{}

		districts, ok := treeSets[l.State]
		if !ok {
			districts = make(map[string]map[string]struct{})
			treeSets[l.State] = districts
		}
		types, ok := districts[l.District]
		if !ok {
			types = make(map[string]struct{})
			districts[l.District] = types
		}
		types[l.PropertyType] = struct{}{}
	}

	s.PropertyTypes = sortedKeys(typeSet)

	for state, districts := range treeSets {
		s.LocationTree[state] = make(map[string][]string, len(districts))
		for district, types := range districts {
			s.LocationTree[state][district] = sortedKeys(types)
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
