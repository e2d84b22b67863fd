package city

import (
	"strings"

	"Local-Flavor-Backend/pkg/geo"
)

type City struct {
	Name     string
	Country  string
	Location geo.Point
}

// Directory is a small fixed table of known cities. Lookups are linear scans.
type Directory struct {
	cities   []City
	radiusKM float64
}

var knownCities = []City{
	{Name: "Naples", Country: "Italy", Location: geo.Point{Lat: 40.8358, Lng: 14.2488}},
	{Name: "Milan", Country: "Italy", Location: geo.Point{Lat: 45.4642, Lng: 9.1900}},
	{Name: "Florence", Country: "Italy", Location: geo.Point{Lat: 43.7696, Lng: 11.2558}},
	{Name: "Rome", Country: "Italy", Location: geo.Point{Lat: 41.9028, Lng: 12.4964}},
	{Name: "Lyon", Country: "France", Location: geo.Point{Lat: 45.7640, Lng: 4.8357}},
	{Name: "Paris", Country: "France", Location: geo.Point{Lat: 48.8566, Lng: 2.3522}},
	{Name: "London", Country: "United Kingdom", Location: geo.Point{Lat: 51.5074, Lng: -0.1278}},
	{Name: "Barcelona", Country: "Spain", Location: geo.Point{Lat: 41.3874, Lng: 2.1686}},
	{Name: "Marrakesh", Country: "Morocco", Location: geo.Point{Lat: 31.6295, Lng: -7.9811}},
	{Name: "Cape Town", Country: "South Africa", Location: geo.Point{Lat: -33.9249, Lng: 18.4241}},
	{Name: "Mumbai", Country: "India", Location: geo.Point{Lat: 19.0760, Lng: 72.8777}},
	{Name: "Georgetown", Country: "Malaysia", Location: geo.Point{Lat: 5.4141, Lng: 100.3296}},
	{Name: "Bangkok", Country: "Thailand", Location: geo.Point{Lat: 13.7563, Lng: 100.5018}},
	{Name: "Tokyo", Country: "Japan", Location: geo.Point{Lat: 35.6762, Lng: 139.6503}},
	{Name: "Sydney", Country: "Australia", Location: geo.Point{Lat: -33.8688, Lng: 151.2093}},
	{Name: "Austin", Country: "United States", Location: geo.Point{Lat: 30.2672, Lng: -97.7431}},
	{Name: "New Orleans", Country: "United States", Location: geo.Point{Lat: 29.9511, Lng: -90.0715}},
	{Name: "New York", Country: "United States", Location: geo.Point{Lat: 40.7128, Lng: -74.0060}},
	{Name: "Mexico City", Country: "Mexico", Location: geo.Point{Lat: 19.4326, Lng: -99.1332}},
	{Name: "Lima", Country: "Peru", Location: geo.Point{Lat: -12.0464, Lng: -77.0428}},
}

func NewDirectory(cities []City, radiusKM float64) *Directory {
	return &Directory{cities: cities, radiusKM: radiusKM}
}

// DefaultDirectory returns the built-in city table with the given search radius.
func DefaultDirectory(radiusKM float64) *Directory {
	return NewDirectory(knownCities, radiusKM)
}

func (d *Directory) RadiusKM() float64 {
	return d.radiusKM
}

// FindNearest returns the closest city to p if it lies within the directory
// radius. On exact ties the earlier entry wins.
func (d *Directory) FindNearest(p geo.Point) (City, float64, bool) {
	var (
		best     City
		bestDist = d.radiusKM
		found    bool
	)

	for _, c := range d.cities {
		dist := geo.Distance(p, c.Location)
		if dist < bestDist || (!found && dist <= bestDist) {
			best, bestDist, found = c, dist, true
		}
	}

	return best, bestDist, found
}

func (d *Directory) Lookup(name string) (City, bool) {
	name = strings.TrimSpace(name)
	for _, c := range d.cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}
