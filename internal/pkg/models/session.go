package models

// MapSnapshot is the state of one map session as rendered by a client.
// The inputs are those of the pass that produced the region and markers.
type MapSnapshot struct {
	SessionID          string      `json:"session_id"`
	Generation         uint64      `json:"generation"`
	User               *GeoPoint   `json:"user,omitempty"`
	UserAddress        string      `json:"user_address,omitempty"`
	Destination        *GeoPoint   `json:"destination,omitempty"`
	DestinationAddress string      `json:"destination_address,omitempty"`
	RadiusKm           float64     `json:"radius_km"`
	Region             Region      `json:"region"`
	Markers            []MapMarker `json:"markers"`
	SelectedDriverID   *int64      `json:"selected_driver_id,omitempty"`
}

// MarkersRequest asks for a one-off derivation without a session
type MarkersRequest struct {
	User        *GeoPoint `json:"user"`
	Destination *GeoPoint `json:"destination,omitempty"`
	RadiusKm    float64   `json:"radius_km"`
}

// MarkersResponse is the result of a one-off derivation
type MarkersResponse struct {
	Region  Region      `json:"region"`
	Markers []MapMarker `json:"markers"`
}

// RegionRequest asks for the viewport fitting two optional points
type RegionRequest struct {
	User        *GeoPoint `json:"user,omitempty"`
	Destination *GeoPoint `json:"destination,omitempty"`
}
