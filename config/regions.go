package config

// Region is a named map viewport used as a fallback when a search result has
// no geocoded listings to center on.
type Region struct {
	Name      string    `json:"name"`
	Center    []float64 `json:"center"` // [lat, lng]
	ZoomLevel int       `json:"zoom_level"`
}

// SupportedRegions lists the viewports the map client knows about.
var SupportedRegions = []Region{
	{
		Name:      "kuala-lumpur",
		Center:    []float64{3.1319, 101.6841},
		ZoomLevel: 11,
	},
	// Add more regions here as needed
}

// GetRegionNames returns the names of all supported regions.
func GetRegionNames() []string {
	names := make([]string, len(SupportedRegions))
	for i, region := range SupportedRegions {
		names[i] = region.Name
	}
	return names
}

// GetRegionByName returns a region configuration by name.
func GetRegionByName(name string) *Region {
	for _, region := range SupportedRegions {
		if region.Name == name {
			return &region
		}
	}
	return nil
}
