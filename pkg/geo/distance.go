package geo

import "math"

// EarthRadiusKM is the mean Earth radius used for all distance math.
const EarthRadiusKM = 6371.0

type Point struct {
	Lat float64
	Lng float64
}

func (p Point) Valid() bool {
	return isFinite(p.Lat) && isFinite(p.Lng) &&
		p.Lat >= -90 && p.Lat <= 90 &&
		p.Lng >= -180 && p.Lng <= 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Distance returns the great-circle distance between a and b in kilometers.
// Non-finite input yields +Inf so callers can filter with a plain <= radius test.
func Distance(a, b Point) float64 {
	if !isFinite(a.Lat) || !isFinite(a.Lng) || !isFinite(b.Lat) || !isFinite(b.Lng) {
		return math.Inf(1)
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push h a hair past 1 for antipodal points
	h = math.Min(1, math.Max(0, h))

	return EarthRadiusKM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func Within(a, b Point, radiusKM float64) bool {
	return Distance(a, b) <= radiusKM
}
