package models

// OptionsResponse backs GET /api/options. Keys match what the search form
// consumes.
type OptionsResponse struct {
	AllTypes     []string                       `json:"all_types"`
	LocationTree map[string]map[string][]string `json:"location_tree"`
}

// SearchResponse is the full body for a successful search. Not-found and
// not-loaded outcomes are sent as a bare {"found": false[, "error": ...]}.
type SearchResponse struct {
	Found          bool                `json:"found"`
	Location       string              `json:"location"`
	MedianRent     int                 `json:"medianRent"`
	SuitableIncome int                 `json:"suitableIncome"`
	Coordinates    []float64           `json:"coordinates"` // [lat, lng]
	Points         [][]float64         `json:"points"`      // [lat, lng, rent]
	MapMin         int                 `json:"mapMin"`
	MapMax         int                 `json:"mapMax"`
	CommonFeatures []string            `json:"commonFeatures"`
	Count          int                 `json:"count"`
	Comparison     []ComparisonEntry   `json:"comparison"`
	Trends         []TrendEntry        `json:"trends"`
	Distribution   []DistributionEntry `json:"distribution"`
}

// ComparisonEntry compares one other property type in the same district
// against the queried one.
type ComparisonEntry struct {
	Type       string `json:"type"`
	MedianRent int    `json:"medianRent"`
	Diff       int    `json:"diff"`
}

// TrendEntry is one day of the median price series.
type TrendEntry struct {
	Name  string `json:"name"` // day label, 2006-01-02
	Price int    `json:"price"`
}

// DistributionEntry is one non-empty histogram bin.
type DistributionEntry struct {
	Range string `json:"range"` // "<lo>-<hi>"
	Count int    `json:"count"`
}
