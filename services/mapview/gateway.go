package mapview

import (
	"context"

	"github.com/ryde/ryde/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ryde/ryde/services/mapview DirectoryGW,DirectionsGW

// DirectoryGW reads the driver directory service
type DirectoryGW interface {
	// ListDrivers returns the drivers of the rating tier selected by radiusKm.
	// Every failure is reported as ErrDriverFetchFailed.
	ListDrivers(ctx context.Context, radiusKm float64) ([]*models.Driver, error)
}

// DirectionsGW estimates travel between two points
type DirectionsGW interface {
	Route(ctx context.Context, origin, destination models.GeoPoint) (models.RouteLeg, error)
}
