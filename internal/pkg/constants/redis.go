package constants

// Redis key formats
const (
	// Driver Service
	KeyDriverGeo = "drivers:geo" // GEO set of live driver positions, member = driver id

	// Map View Service
	KeyDirectionsLeg = "directions:leg:%s:%s" // Format: directions:leg:{origin_geohash}:{destination_geohash}
)
