package drivers

import (
	"context"

	"github.com/ryde/ryde/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ryde/ryde/services/drivers DriverUC

// DriverUC defines the driver directory business logic
type DriverUC interface {
	// ListDrivers returns the drivers whose rating meets the tier of radiusKm,
	// with their latest known positions.
	ListDrivers(ctx context.Context, radiusKm float64) ([]*models.Driver, error)
	GetDriver(ctx context.Context, id int64) (*models.Driver, error)
	UpdateDriverLocation(ctx context.Context, update *models.DriverLocationUpdate) error
}
