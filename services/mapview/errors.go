package mapview

import "errors"

var (
	// ErrDriverFetchFailed is returned when the driver directory cannot be read
	ErrDriverFetchFailed = errors.New("driver fetch failed")
	ErrSessionNotFound   = errors.New("session not found")
	// ErrDriverNotInView is returned when selecting a driver that has no marker
	ErrDriverNotInView  = errors.New("driver is not on the map")
	ErrInvalidLocation  = errors.New("invalid location")
	ErrInvalidRadius    = errors.New("radius must be a positive number of kilometers")
	ErrPassSuperseded   = errors.New("derivation superseded by a newer update")
	ErrDirectionsFailed = errors.New("directions lookup failed")
)
