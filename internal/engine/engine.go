package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"rentscope/server/internal/dataset"
	"rentscope/server/internal/models"
)

const (
	// AffordabilityMultiplier turns a median rent into a suggested income.
	// Policy constant, not derived from data.
	AffordabilityMultiplier = 3

	// HistogramBinWidth is the fixed price bin size in currency units.
	HistogramBinWidth = 500

	// MaxMapPoints caps the number of geocoded listings returned for map
	// rendering; larger result sets are uniformly subsampled.
	MaxMapPoints = 2000
)

var (
	// ErrNotLoaded means Search ran before a snapshot existed. An expected
	// outcome during startup, not a fault.
	ErrNotLoaded = errors.New("dataset not loaded")

	// ErrNoListings means the exact-match filter found nothing. A common,
	// expected outcome.
	ErrNoListings = errors.New("no listings match the query")
)

// Engine answers rental-market queries against one immutable snapshot.
// It is safe for concurrent use: every query computes into request-local
// values and never touches shared mutable state.
type Engine struct {
	snap           *dataset.Snapshot
	fallbackCenter orb.Point
	logger         *logrus.Logger
}

func New(snap *dataset.Snapshot, fallbackCenter orb.Point, logger *logrus.Logger) *Engine {
	return &Engine{
		snap:           snap,
		fallbackCenter: fallbackCenter,
		logger:         logger,
	}
}

// Query identifies one (state, district, property type) market. All three
// fields are matched exactly against the normalized snapshot values.
type Query struct {
	State        string
	District     string
	PropertyType string
}

// Result is the full per-request output of a successful search. It is owned
// by the request that created it and never persisted.
type Result struct {
	Query          Query
	MedianRent     int
	SuitableIncome int
	Count          int
	CommonFeatures []string
	Comparison     []TypeComparison
	Trends         []TrendPoint
	Distribution   []PriceBin
	Map            MapSample
}

// TypeComparison relates another property type in the same district to the
// queried one.
type TypeComparison struct {
	PropertyType string
	MedianRent   int
	Diff         int
}

// TrendPoint is the median rent for one calendar day.
type TrendPoint struct {
	Day        string // 2006-01-02
	MedianRent int
}

// PriceBin is one non-empty histogram bin [Low, High).
type PriceBin struct {
	Low   int
	High  int
	Count int
}

// FormOptions exposes the derived indexes consumed by the search form.
func (e *Engine) FormOptions() ([]string, map[string]map[string][]string, error) {
	if e == nil || e.snap == nil {
		return nil, nil, ErrNotLoaded
	}
	return e.snap.PropertyTypes, e.snap.LocationTree, nil
}

// Size returns the number of listings in the snapshot, or 0 when no snapshot
// is loaded.
func (e *Engine) Size() int {
	if e == nil || e.snap == nil {
		return 0
	}
	return len(e.snap.Listings)
}

// Search runs the full query pipeline. It returns ErrNoListings when the
// exact-match filter is empty; no downstream step runs in that case.
func (e *Engine) Search(q Query) (*Result, error) {
	if e == nil || e.snap == nil {
		return nil, ErrNotLoaded
	}

	matched := filterListings(e.snap.Listings, func(l *models.Listing) bool {
		return l.State == q.State && l.District == q.District && l.PropertyType == q.PropertyType
	})
	if len(matched) == 0 {
		return nil, ErrNoListings
	}

	medianRent := medianInt(rentPrices(matched))

	result := &Result{
		Query:          q,
		MedianRent:     medianRent,
		SuitableIncome: medianRent * AffordabilityMultiplier,
		Count:          len(matched),
		CommonFeatures: e.commonFeatures(matched),
		Comparison:     e.compareTypes(q, medianRent),
		Trends:         e.trendSeries(matched),
		Distribution:   priceDistribution(matched),
		Map:            e.mapSample(matched),
	}

	e.logger.WithFields(logrus.Fields{
		"state":    q.State,
		"district": q.District,
		"type":     q.PropertyType,
		"count":    result.Count,
	}).Debug("Search completed")

	return result, nil
}

// filterListings returns pointers into the snapshot; the snapshot itself is
// never copied or mutated.
func filterListings(listings []models.Listing, keep func(*models.Listing) bool) []*models.Listing {
	var matched []*models.Listing
	for i := range listings {
		if keep(&listings[i]) {
			matched = append(matched, &listings[i])
		}
	}
	return matched
}

func rentPrices(listings []*models.Listing) []float64 {
	prices := make([]float64, len(listings))
	for i, l := range listings {
		prices[i] = l.RentPrice
	}
	return prices
}

// commonFeatures builds the ordered feature list: furnishing mode, median
// size, bedroom mode, bathroom mode. Columns with no values anywhere in the
// dataset are skipped entirely.
func (e *Engine) commonFeatures(matched []*models.Listing) []string {
	var features []string
	avail := e.snap.Availability

	if avail.FurnishingType {
		var vals []string
		for _, l := range matched {
			if l.FurnishingType != nil {
				vals = append(vals, *l.FurnishingType)
			}
		}
		if mode, ok := modeString(vals); ok {
			features = append(features, mode)
		}
	}

	if avail.PropertySize {
		if vals := collectValues(matched, func(l *models.Listing) *float64 { return l.PropertySize }); len(vals) > 0 {
			features = append(features, fmt.Sprintf("%d sqft", medianInt(vals)))
		}
	}

	if avail.BedroomCount {
		if mode, ok := modeFloat(collectValues(matched, func(l *models.Listing) *float64 { return l.BedroomCount })); ok {
			features = append(features, fmt.Sprintf("%d Beds", int(mode)))
		}
	}

	if avail.BathroomCount {
		if mode, ok := modeFloat(collectValues(matched, func(l *models.Listing) *float64 { return l.BathroomCount })); ok {
			features = append(features, fmt.Sprintf("%d Baths", int(mode)))
		}
	}

	return features
}

func collectValues(listings []*models.Listing, get func(*models.Listing) *float64) []float64 {
	var vals []float64
	for _, l := range listings {
		if v := get(l); v != nil {
			vals = append(vals, *v)
		}
	}
	return vals
}

// compareTypes re-filters by (state, district) only, computes the median rent
// per property type and relates every other type to the queried median.
func (e *Engine) compareTypes(q Query, queriedMedian int) []TypeComparison {
	district := filterListings(e.snap.Listings, func(l *models.Listing) bool {
		return l.State == q.State && l.District == q.District
	})

	byType := make(map[string][]float64)
	for _, l := range district {
		byType[l.PropertyType] = append(byType[l.PropertyType], l.RentPrice)
	}

	var comparison []TypeComparison
	for propertyType, prices := range byType {
		if propertyType == q.PropertyType {
			continue
		}
		median := medianInt(prices)
		comparison = append(comparison, TypeComparison{
			PropertyType: propertyType,
			MedianRent:   median,
			Diff:         median - queriedMedian,
		})
	}

	sort.Slice(comparison, func(i, j int) bool {
		if comparison[i].MedianRent != comparison[j].MedianRent {
			return comparison[i].MedianRent < comparison[j].MedianRent
		}
		return comparison[i].PropertyType < comparison[j].PropertyType
	})

	return comparison
}

// trendSeries groups the matched listings by extract day and computes the
// median rent per day. Listings without a parseable date are excluded from
// the series only; an absent date column yields an empty series.
func (e *Engine) trendSeries(matched []*models.Listing) []TrendPoint {
	if !e.snap.Availability.ExtractDate {
		return nil
	}

	byDay := make(map[string][]float64)
	for _, l := range matched {
		if l.ExtractDate == nil {
			continue
		}
		day := l.ExtractDate.Format("2006-01-02")
		byDay[day] = append(byDay[day], l.RentPrice)
	}

	trends := make([]TrendPoint, 0, len(byDay))
	for day, prices := range byDay {
		trends = append(trends, TrendPoint{Day: day, MedianRent: medianInt(prices)})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Day < trends[j].Day })

	return trends
}

// priceDistribution bins rents into fixed half-open [k*width, (k+1)*width)
// buckets and emits only the non-empty ones in ascending order. The maximum
// price always lands in a bin.
func priceDistribution(matched []*models.Listing) []PriceBin {
	counts := make(map[int]int)
	for _, l := range matched {
		counts[int(l.RentPrice)/HistogramBinWidth]++
	}

	indexes := make([]int, 0, len(counts))
	for idx := range counts {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	bins := make([]PriceBin, 0, len(indexes))
	for _, idx := range indexes {
		bins = append(bins, PriceBin{
			Low:   idx * HistogramBinWidth,
			High:  (idx + 1) * HistogramBinWidth,
			Count: counts[idx],
		})
	}
	return bins
}
