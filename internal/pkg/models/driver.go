package models

import "time"

// Driver is a row of the driver directory. Location is nil when the
// driver has never reported a position.
type Driver struct {
	ID              int64     `json:"id" db:"id"`
	FirstName       string    `json:"first_name" db:"first_name"`
	LastName        string    `json:"last_name" db:"last_name"`
	ProfileImageURL string    `json:"profile_image_url" db:"profile_image_url"`
	CarImageURL     string    `json:"car_image_url" db:"car_image_url"`
	CarSeats        int       `json:"car_seats" db:"car_seats"`
	Rating          float64   `json:"rating" db:"rating"`
	PricePerKm      float64   `json:"price_per_km" db:"price_per_km"`
	Location        *GeoPoint `json:"location,omitempty" db:"-"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// FullName joins first and last name the way the driver card shows it
func (d Driver) FullName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	if d.FirstName == "" {
		return d.LastName
	}
	return d.FirstName + " " + d.LastName
}
