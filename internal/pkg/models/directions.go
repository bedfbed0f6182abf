package models

// RouteLeg is the travel estimate returned by the directions provider
// for one origin/destination pair
type RouteLeg struct {
	DurationSeconds float64 `json:"duration_seconds"`
	DistanceMeters  float64 `json:"distance_meters"`
}
