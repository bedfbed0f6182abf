package drivers

import (
	"context"
	"time"

	"github.com/ryde/ryde/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ryde/ryde/services/drivers DriverRepo,LocationCache

// DriverRepo defines the persistent driver directory
type DriverRepo interface {
	ListByMinRating(ctx context.Context, minRating float64) ([]*models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	UpdateLocation(ctx context.Context, id int64, location models.GeoPoint, at time.Time) error
}

// LocationCache holds the live driver positions
type LocationCache interface {
	SetPosition(ctx context.Context, id int64, location models.GeoPoint) error
	// GetPositions returns the known positions of ids. Unknown ids are absent from the map.
	GetPositions(ctx context.Context, ids []int64) (map[int64]models.GeoPoint, error)
}
