package models

// ETAStatus tells whether a marker's time and price are known
type ETAStatus string

const (
	// ETAPending means enrichment has not run for this marker yet
	ETAPending ETAStatus = "pending"
	// ETAReady means Time and Price are set
	ETAReady ETAStatus = "ready"
	// ETAUnavailable means the directions lookup failed for this marker
	ETAUnavailable ETAStatus = "unavailable"
)

// MapMarker is a driver positioned for display on the map.
// Time (minutes) and Price are non-nil only when ETAStatus is ETAReady.
type MapMarker struct {
	ID              int64     `json:"id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Title           string    `json:"title"`
	ProfileImageURL string    `json:"profile_image_url"`
	CarImageURL     string    `json:"car_image_url"`
	CarSeats        int       `json:"car_seats"`
	Rating          float64   `json:"rating"`
	PricePerKm      float64   `json:"price_per_km"`
	DistanceKm      float64   `json:"distance_km"`
	Time            *float64  `json:"time,omitempty"`
	Price           *string   `json:"price,omitempty"`
	ETAStatus       ETAStatus `json:"eta_status"`
}

// Point returns the marker position
func (m MapMarker) Point() GeoPoint {
	return GeoPoint{Latitude: m.Latitude, Longitude: m.Longitude}
}

// CloneMarkers returns a copy of markers that shares no pointers with it
func CloneMarkers(markers []MapMarker) []MapMarker {
	if markers == nil {
		return nil
	}
	out := make([]MapMarker, len(markers))
	for i, m := range markers {
		if m.Time != nil {
			t := *m.Time
			m.Time = &t
		}
		if m.Price != nil {
			p := *m.Price
			m.Price = &p
		}
		out[i] = m
	}
	return out
}
