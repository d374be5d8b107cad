// Package geo provides the pure geographic math used by the prescriber
// search: radius bounding boxes and great-circle distances. Distances are
// expressed in statute miles throughout.
package geo

import (
	"math"

	"rxradar/internal/errors"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusMiles is the spherical Earth radius used for great-circle
	// distances.
	EarthRadiusMiles = 3959.0

	// milesPerDegreeLat is the approximate north-south span of one degree of
	// latitude.
	milesPerDegreeLat = 69.0
)

// ErrInvalidCoordinates is returned for points outside the valid
// latitude/longitude range.
var ErrInvalidCoordinates = errors.New("coordinates outside valid range")

// ValidatePoint fails fast on malformed coordinates rather than letting them
// flow into distance math and produce nonsensical results.
func ValidatePoint(p orb.Point) error {
	if p.Lat() < -90 || p.Lat() > 90 {
		return errors.Wrapf(ErrInvalidCoordinates, "latitude %v", p.Lat())
	}
	if p.Lon() < -180 || p.Lon() > 180 {
		return errors.Wrapf(ErrInvalidCoordinates, "longitude %v", p.Lon())
	}

	return nil
}

// BoundAround computes the rectangular pre-filter box for a radius query
// using the standard small-angle approximation. The box is a superset of the
// true circle: corners admit false positives, so callers must still apply
// exact great-circle filtering downstream.
func BoundAround(anchor orb.Point, radiusMiles float64) orb.Bound {
	latDelta := radiusMiles / milesPerDegreeLat
	lngDelta := radiusMiles / (milesPerDegreeLat * math.Cos(anchor.Lat()*math.Pi/180))

	return orb.Bound{
		Min: orb.Point{anchor.Lon() - lngDelta, anchor.Lat() - latDelta},
		Max: orb.Point{anchor.Lon() + lngDelta, anchor.Lat() + latDelta},
	}
}

// DistanceMiles computes the great-circle distance between two points via the
// spherical law of cosines. The acos argument is clamped to [-1, 1] to guard
// against floating rounding for near-identical points.
func DistanceMiles(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lng1 := a.Lon() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	lng2 := b.Lon() * math.Pi / 180

	arg := math.Cos(lat1)*math.Cos(lat2)*math.Cos(lng2-lng1) + math.Sin(lat1)*math.Sin(lat2)
	arg = math.Min(1, math.Max(-1, arg))

	return EarthRadiusMiles * math.Acos(arg)
}
