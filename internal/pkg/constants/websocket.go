package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Client events
	EventLocationUpdate    = "location_update"
	EventDestinationUpdate = "destination_update"
	EventRadiusUpdate      = "radius_update"
	EventSelectDriver      = "select_driver"

	// Server events
	EventMapUpdate = "map_update"
)

// WebSocket error codes
const (
	ErrorInvalidFormat     = "invalid_format"
	ErrorValidationFailed  = "validation_failed"
	ErrorInternalError     = "internal_error"
	ErrorInvalidLocation   = "invalid_location"
	ErrorDriverFetchFailed = "driver_fetch_failed"
	ErrorDriverNotFound    = "driver_not_found"
	ErrorUnknownEvent      = "unknown_event"
)

// User-facing messages
const (
	MessageDriverFetchFailed = "Failed to load drivers. Please try again."
)
