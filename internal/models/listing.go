package models

import "time"

// RawListing is a single row as it comes out of a record source (CSV column,
// database cell), before any validation. Every field is the source's string
// representation; empty means the value (or the whole column) was absent.
type RawListing struct {
	State          string
	District       string
	PropertyType   string
	RentPrice      string
	FurnishingType string
	PropertySize   string
	BedroomCount   string
	BathroomCount  string
	ExtractDate    string
	Latitude       string
	Longitude      string
}

// Listing is a validated rental record. State, District, PropertyType and
// RentPrice are always set; everything else may be nil per record.
type Listing struct {
	State          string     `json:"state"`
	District       string     `json:"district"`
	PropertyType   string     `json:"property_type"`
	RentPrice      float64    `json:"rent_price"`
	FurnishingType *string    `json:"furnishing_type"`
	PropertySize   *float64   `json:"property_size"`
	BedroomCount   *float64   `json:"bedroom_count"`
	BathroomCount  *float64   `json:"bathroom_count"`
	ExtractDate    *time.Time `json:"extract_date"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
}

// HasCoordinates reports whether the listing can be placed on a map.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
