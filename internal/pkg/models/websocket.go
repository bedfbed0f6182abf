package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WSRadiusUpdate is the payload of a radius_update event
type WSRadiusUpdate struct {
	RadiusKm float64 `json:"radius_km"`
}

// WSSelectDriver is the payload of a select_driver event. A nil
// DriverID clears the selection.
type WSSelectDriver struct {
	DriverID *int64 `json:"driver_id"`
}
