package engine

import (
	"math/rand"

	"github.com/paulmach/orb"

	"rentscope/server/internal/models"
)

// MapPoint is one geocoded listing prepared for map rendering.
type MapPoint struct {
	Location orb.Point // lon, lat
	Rent     float64
}

// MapSample is the geospatial slice of a search result. Min and Max cover
// the full geocoded subset, computed before any subsampling, so the map's
// color scale reflects the true price range.
type MapSample struct {
	Center orb.Point // lon, lat
	Min    int
	Max    int
	Points []MapPoint
}

// mapSample drops listings without coordinates, centers the map on the mean
// position and uniformly subsamples down to MaxMapPoints when needed. With
// no geocoded listings it falls back to the configured center with an empty
// point list.
//
// The sample is drawn from the shared math/rand source and is intentionally
// not reproducible across calls; only its size is part of the contract.
func (e *Engine) mapSample(matched []*models.Listing) MapSample {
	var points []MapPoint
	var sumLat, sumLng float64
	for _, l := range matched {
		if !l.HasCoordinates() {
			continue
		}
		points = append(points, MapPoint{
			Location: orb.Point{*l.Longitude, *l.Latitude},
			Rent:     l.RentPrice,
		})
		sumLat += *l.Latitude
		sumLng += *l.Longitude
	}

	if len(points) == 0 {
		return MapSample{Center: e.fallbackCenter, Points: []MapPoint{}}
	}

	sample := MapSample{
		Center: orb.Point{sumLng / float64(len(points)), sumLat / float64(len(points))},
		Min:    int(points[0].Rent),
		Max:    int(points[0].Rent),
	}
	for _, p := range points[1:] {
		if int(p.Rent) < sample.Min {
			sample.Min = int(p.Rent)
		}
		if int(p.Rent) > sample.Max {
			sample.Max = int(p.Rent)
		}
	}

	if len(points) > MaxMapPoints {
		rand.Shuffle(len(points), func(i, j int) {
			points[i], points[j] = points[j], points[i]
		})
		points = points[:MaxMapPoints]
	}
	sample.Points = points

	return sample
}
