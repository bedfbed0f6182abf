// Package geo derives what a rider's map shows: the viewport, the driver
// markers inside the search radius and their time and fare estimates.
package geo

import (
	"math"

	"github.com/ryde/ryde/internal/pkg/models"
)

const (
	// DefaultLatitude and DefaultLongitude center the map when no point is known
	DefaultLatitude  = 37.78825
	DefaultLongitude = -122.4324

	// MinDelta is the smallest span of either axis of a region
	MinDelta = 0.01
	// RegionPadding scales a two point span so neither point sits on the edge
	RegionPadding = 1.3

	// MaxLatitudeDelta and MaxLongitudeDelta cap a padded span at the whole globe
	MaxLatitudeDelta  = 180.0
	MaxLongitudeDelta = 360.0
)

// DefaultRegion is returned when neither the user nor the destination is known
var DefaultRegion = models.Region{
	Latitude:       DefaultLatitude,
	Longitude:      DefaultLongitude,
	LatitudeDelta:  MinDelta,
	LongitudeDelta: MinDelta,
}

// CalculateRegion fits a region around the user and destination points.
// A nil or invalid point counts as absent. Spans are measured without
// wrapping at the antimeridian and are capped at the whole globe.
func CalculateRegion(user, destination *models.GeoPoint) models.Region {
	user = validOrNil(user)
	destination = validOrNil(destination)

	switch {
	case user == nil && destination == nil:
		return DefaultRegion
	case destination == nil:
		return centeredOn(*user)
	case user == nil:
		return centeredOn(*destination)
	}

	latSpan := math.Abs(user.Latitude - destination.Latitude)
	lonSpan := math.Abs(user.Longitude - destination.Longitude)

	return models.Region{
		Latitude:       (user.Latitude + destination.Latitude) / 2,
		Longitude:      (user.Longitude + destination.Longitude) / 2,
		LatitudeDelta:  math.Min(math.Max(latSpan, MinDelta)*RegionPadding, MaxLatitudeDelta),
		LongitudeDelta: math.Min(math.Max(lonSpan, MinDelta)*RegionPadding, MaxLongitudeDelta),
	}
}

func centeredOn(p models.GeoPoint) models.Region {
	return models.Region{
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		LatitudeDelta:  MinDelta,
		LongitudeDelta: MinDelta,
	}
}

func validOrNil(p *models.GeoPoint) *models.GeoPoint {
	if p == nil || !p.Valid() {
		return nil
	}
	return p
}
