package usecase

import (
	"context"
	"fmt"

	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/services/drivers"
)

// DriverUC implements drivers.DriverUC
type DriverUC struct {
	repo  drivers.DriverRepo
	cache drivers.LocationCache
}

// NewDriverUC creates a new driver use case
func NewDriverUC(repo drivers.DriverRepo, cache drivers.LocationCache) drivers.DriverUC {
	return &DriverUC{
		repo:  repo,
		cache: cache,
	}
}

// RatingThreshold maps the requested search radius to the minimum driver
// rating: 1 km asks for top rated drivers, 2 km relaxes the bar, any other
// radius lists everyone.
func RatingThreshold(radiusKm float64) float64 {
	switch radiusKm {
	case 1:
		return 4.0
	case 2:
		return 3.0
	default:
		return 0
	}
}

// ListDrivers returns the drivers of the rating tier for radiusKm with their
// live positions applied. A cache failure falls back to the stored positions.
func (uc *DriverUC) ListDrivers(ctx context.Context, radiusKm float64) ([]*models.Driver, error) {
	list, err := uc.repo.ListByMinRating(ctx, RatingThreshold(radiusKm))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]int64, len(list))
	for i, d := range list {
		ids[i] = d.ID
	}

	positions, err := uc.cache.GetPositions(ctx, ids)
	if err != nil {
		logger.Warn("Live driver positions unavailable, using stored positions",
			logger.Int("drivers", len(list)),
			logger.Err(err))
		return list, nil
	}

	for _, d := range list {
		if pos, ok := positions[d.ID]; ok {
			p := pos
			d.Location = &p
		}
	}
	return list, nil
}

// GetDriver returns a single driver with its live position applied
func (uc *DriverUC) GetDriver(ctx context.Context, id int64) (*models.Driver, error) {
	driver, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	positions, err := uc.cache.GetPositions(ctx, []int64{id})
	if err != nil {
		logger.Warn("Live driver position unavailable", logger.Int64("driver_id", id), logger.Err(err))
		return driver, nil
	}
	if pos, ok := positions[id]; ok {
		driver.Location = &pos
	}
	return driver, nil
}

// UpdateDriverLocation stores a reported driver position
func (uc *DriverUC) UpdateDriverLocation(ctx context.Context, update *models.DriverLocationUpdate) error {
	if update == nil || update.DriverID <= 0 {
		return fmt.Errorf("%w: driver_id is required", drivers.ErrInvalidLocation)
	}
	if !update.Location.Valid() {
		return fmt.Errorf("%w: latitude must be within [-90, 90] and longitude within [-180, 180]", drivers.ErrInvalidLocation)
	}
	if update.Timestamp.IsZero() {
		update.Timestamp = models.Now()
	}

	if err := uc.repo.UpdateLocation(ctx, update.DriverID, update.Location, update.Timestamp); err != nil {
		return err
	}

	if err := uc.cache.SetPosition(ctx, update.DriverID, update.Location); err != nil {
		return err
	}

	logger.Debug("Driver location updated",
		logger.Int64("driver_id", update.DriverID),
		logger.Float64("latitude", update.Location.Latitude),
		logger.Float64("longitude", update.Location.Longitude))
	return nil
}
