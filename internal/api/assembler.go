package api

import (
	"fmt"

	"github.com/paulmach/orb/geojson"

	"rentscope/server/internal/engine"
	"rentscope/server/internal/models"
)

// AssembleSearch maps an engine result onto the wire contract. Every slice is
// non-nil so empty sections encode as [] rather than null.
func AssembleSearch(result *engine.Result) models.SearchResponse {
	points := make([][]float64, 0, len(result.Map.Points))
	for _, p := range result.Map.Points {
		points = append(points, []float64{p.Location.Lat(), p.Location.Lon(), p.Rent})
	}

	features := result.CommonFeatures
	if features == nil {
		features = []string{}
	}

	comparison := make([]models.ComparisonEntry, 0, len(result.Comparison))
	for _, c := range result.Comparison {
		comparison = append(comparison, models.ComparisonEntry{
			Type:       c.PropertyType,
			MedianRent: c.MedianRent,
			Diff:       c.Diff,
		})
	}

	trends := make([]models.TrendEntry, 0, len(result.Trends))
	for _, t := range result.Trends {
		trends = append(trends, models.TrendEntry{
			Name:  t.Day,
			Price: t.MedianRent,
		})
	}

	distribution := make([]models.DistributionEntry, 0, len(result.Distribution))
	for _, bin := range result.Distribution {
		distribution = append(distribution, models.DistributionEntry{
			Range: fmt.Sprintf("%d-%d", bin.Low, bin.High),
			Count: bin.Count,
		})
	}

	return models.SearchResponse{
		Found:          true,
		Location:       fmt.Sprintf("%s, %s", result.Query.District, result.Query.State),
		MedianRent:     result.MedianRent,
		SuitableIncome: result.SuitableIncome,
		Coordinates:    []float64{result.Map.Center.Lat(), result.Map.Center.Lon()},
		Points:         points,
		MapMin:         result.Map.Min,
		MapMax:         result.Map.Max,
		CommonFeatures: features,
		Count:          result.Count,
		Comparison:     comparison,
		Trends:         trends,
		Distribution:   distribution,
	}
}

// AssembleGeoJSON renders the map sample as a FeatureCollection of point
// features carrying the rent for client-side color scaling.
func AssembleGeoJSON(result *engine.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range result.Map.Points {
		feature := geojson.NewFeature(p.Location)
		feature.Properties = geojson.Properties{
			"rent":          p.Rent,
			"property_type": result.Query.PropertyType,
		}
		fc.Append(feature)
	}
	return fc
}
