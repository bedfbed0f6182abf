package constants

// NATS Subjects
const (
	// Driver Service
	SubjectDriverLocationUpdated = "driver.location.updated"

	// Queue groups
	QueueDriverLocation = "drivers.location"
)
