package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentscope/server/internal/models"
)

func geocoded(rent, lat, lng string) models.RawListing {
	r := rawListing("KL", "Ampang", "Condo", rent)
	r.Latitude = lat
	r.Longitude = lng
	return r
}

func TestMapSampleCenterAndRange(t *testing.T) {
	eng := newTestEngine(t, []models.RawListing{
		geocoded("1500", "3.0", "101.0"),
		geocoded("2000", "4.0", "102.0"),
		// Listings without coordinates stay out of map output but in stats.
		rawListing("KL", "Ampang", "Condo", "9000"),
	})

	result, err := eng.Search(Query{State: "KL", District: "Ampang", PropertyType: "Condo"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Count)
	require.Len(t, result.Map.Points, 2)
	assert.InDelta(t, 3.5, result.Map.Center.Lat(), 1e-9)
	assert.InDelta(t, 101.5, result.Map.Center.Lon(), 1e-9)
	assert.Equal(t, 1500, result.Map.Min)
	assert.Equal(t, 2000, result.Map.Max)
}

func TestMapSampleFallbackCenter(t *testing.T) {
	eng := newTestEngine(t, []models.RawListing{
		rawListing("KL", "Ampang", "Condo", "1500"),
	})

	result, err := eng.Search(Query{State: "KL", District: "Ampang", PropertyType: "Condo"})
	require.NoError(t, err)

	assert.Empty(t, result.Map.Points)
	assert.Equal(t, testCenter, result.Map.Center)
	assert.Equal(t, 0, result.Map.Min)
	assert.Equal(t, 0, result.Map.Max)
}

func TestMapSampleSizeBound(t *testing.T) {
	var raw []models.RawListing
	for i := 0; i < MaxMapPoints+500; i++ {
		raw = append(raw, geocoded(
			fmt.Sprintf("%d", 500+i),
			fmt.Sprintf("%.6f", 3.0+float64(i)*1e-5),
			fmt.Sprintf("%.6f", 101.0+float64(i)*1e-5),
		))
	}

	eng := newTestEngine(t, raw)
	result, err := eng.Search(Query{State: "KL", District: "Ampang", PropertyType: "Condo"})
	require.NoError(t, err)

	// Sample identity is unconstrained; its size is exact and min/max cover
	// the full geocoded set, not just the sample.
	assert.Len(t, result.Map.Points, MaxMapPoints)
	assert.Equal(t, 500, result.Map.Min)
	assert.Equal(t, 500+MaxMapPoints+499, result.Map.Max)
	for _, p := range result.Map.Points {
		assert.GreaterOrEqual(t, int(p.Rent), result.Map.Min)
		assert.LessOrEqual(t, int(p.Rent), result.Map.Max)
	}
}

func TestMapSampleKeepsAllWhenUnderCap(t *testing.T) {
	var raw []models.RawListing
	for i := 0; i < 50; i++ {
		raw = append(raw, geocoded(fmt.Sprintf("%d", 1000+i), "3.1", "101.6"))
	}

	eng := newTestEngine(t, raw)
	result, err := eng.Search(Query{State: "KL", District: "Ampang", PropertyType: "Condo"})
	require.NoError(t, err)
	assert.Len(t, result.Map.Points, 50)
}
