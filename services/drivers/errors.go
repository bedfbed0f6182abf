package drivers

import "errors"

var (
	// ErrDriverNotFound is returned when no driver has the requested id
	ErrDriverNotFound = errors.New("driver not found")
	// ErrInvalidLocation is returned for coordinates outside the valid ranges
	ErrInvalidLocation = errors.New("invalid location")
)
