package models

import (
	"math"
	"time"
)

// GeoPoint is a latitude/longitude pair in degrees
type GeoPoint struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Valid reports whether the point has finite coordinates inside the
// latitude [-90, 90] and longitude [-180, 180] ranges
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// Place is a point picked by a rider together with the address shown for it
type Place struct {
	GeoPoint
	Address string `json:"address,omitempty"`
}

// Region is a map viewport: a center and the span shown around it
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

// Contains reports whether p lies inside center ± delta/2 on both axes
func (r Region) Contains(p GeoPoint) bool {
	return math.Abs(p.Latitude-r.Latitude) <= r.LatitudeDelta/2 &&
		math.Abs(p.Longitude-r.Longitude) <= r.LongitudeDelta/2
}

// DriverLocationUpdate is published by driver devices whenever they move
type DriverLocationUpdate struct {
	DriverID  int64     `json:"driver_id"`
	Location  GeoPoint  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}
