package city

import "Local-Flavor-Backend/pkg/geo"

const DefaultRegion = "Local"

type region struct {
	label          string
	minLat, maxLat float64
	minLng, maxLng float64
}

// Checked in order; the first box containing the point wins.
var regions = []region{
	{label: "Europe", minLat: 35, maxLat: 72, minLng: -25, maxLng: 45},
	{label: "East Asian", minLat: 22, maxLat: 54, minLng: 100, maxLng: 146},
	{label: "Southeast Asian", minLat: -11, maxLat: 22, minLng: 92, maxLng: 141},
	{label: "South Asian", minLat: 5, maxLat: 37, minLng: 60, maxLng: 92},
	{label: "North American", minLat: 15, maxLat: 72, minLng: -170, maxLng: -50},
	{label: "South American", minLat: -56, maxLat: 15, minLng: -82, maxLng: -34},
	{label: "African", minLat: -35, maxLat: 37, minLng: -18, maxLng: 52},
}

// RegionLabel maps a point to a coarse cuisine region, defaulting to "Local".
func RegionLabel(p geo.Point) string {
	for _, r := range regions {
		if p.Lat >= r.minLat && p.Lat <= r.maxLat && p.Lng >= r.minLng && p.Lng <= r.maxLng {
			return r.label
		}
	}
	return DefaultRegion
}
