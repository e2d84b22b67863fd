package geo

import "math"

// BoundingBox is a lat/lng rectangle used as a cheap prefilter before the
// exact distance check. When WrapsAntimeridian is set the longitude range is
// MinLng..180 plus -180..MaxLng.
type BoundingBox struct {
	MinLat, MaxLat    float64
	MinLng, MaxLng    float64
	WrapsAntimeridian bool
}

// polarCutoff is where the longitude span collapses; past it the box covers
// every longitude.
const polarCutoff = 89.0

// NewBoundingBox returns a box that contains every point within radiusKM of
// center. It errs wide: a small margin is added and boxes near the poles or
// spanning the whole globe open up to the full longitude range.
func NewBoundingBox(center Point, radiusKM float64) BoundingBox {
	angular := radiusKM / EarthRadiusKM
	latDelta := toDegrees(angular) * 1.01

	box := BoundingBox{
		MinLat: math.Max(-90, center.Lat-latDelta),
		MaxLat: math.Min(90, center.Lat+latDelta),
		MinLng: -180,
		MaxLng: 180,
	}

	if box.MaxLat >= polarCutoff || box.MinLat <= -polarCutoff || angular >= math.Pi/2 {
		return box
	}

	// use the latitude edge closest to the pole, where meridians converge most
	edgeLat := math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))
	lngDelta := toDegrees(angular/math.Cos(toRadians(edgeLat))) * 1.01
	if lngDelta >= 180 {
		return box
	}

	box.MinLng = center.Lng - lngDelta
	box.MaxLng = center.Lng + lngDelta

	switch {
	case box.MinLng < -180:
		box.MinLng += 360
		box.WrapsAntimeridian = true
	case box.MaxLng > 180:
		box.MaxLng -= 360
		box.WrapsAntimeridian = true
	}

	return box
}

func (b BoundingBox) Contains(p Point) bool {
	if p.Lat < b.MinLat || p.Lat > b.MaxLat {
		return false
	}
	if b.WrapsAntimeridian {
		return p.Lng >= b.MinLng || p.Lng <= b.MaxLng
	}
	return p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}
