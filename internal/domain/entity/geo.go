package entity

import (
	"github.com/paulmach/orb"
)

// GeoAnchor is the geographic origin of a radius search, resolved from a
// 5-digit postal code via the reference table. It is derived per request and
// never persisted.
type GeoAnchor struct {
	Zip   string    // The postal code the anchor was resolved from. Empty for raw-coordinate anchors.
	City  string    // City of the postal code row.
	State string    // State of the postal code row.
	Point orb.Point // Resolved coordinates (lng, lat).
}
