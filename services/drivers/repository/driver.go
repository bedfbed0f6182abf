package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/services/drivers"
)

const driverColumns = `id, first_name, last_name, profile_image_url, car_image_url, car_seats, rating, price_per_km, latitude, longitude, updated_at`

// driverRow maps the nullable position columns of the drivers table
type driverRow struct {
	models.Driver
	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`
}

func (r driverRow) toDriver() *models.Driver {
	d := r.Driver
	if r.Latitude.Valid && r.Longitude.Valid {
		d.Location = &models.GeoPoint{Latitude: r.Latitude.Float64, Longitude: r.Longitude.Float64}
	}
	return &d
}

// DriverRepo implements drivers.DriverRepo on PostgreSQL
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *sqlx.DB) drivers.DriverRepo {
	return &DriverRepo{db: db}
}

// ListByMinRating returns drivers rated at least minRating, ordered by id
func (r *DriverRepo) ListByMinRating(ctx context.Context, minRating float64) ([]*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE rating >= $1 ORDER BY id`

	var rows []driverRow
	if err := r.db.SelectContext(ctx, &rows, query, minRating); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	result := make([]*models.Driver, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDriver())
	}
	return result, nil
}

// GetByID retrieves a driver by ID
func (r *DriverRepo) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	var row driverRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drivers.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return row.toDriver(), nil
}

// UpdateLocation persists the last reported position of a driver
func (r *DriverRepo) UpdateLocation(ctx context.Context, id int64, location models.GeoPoint, at time.Time) error {
	query := `
		UPDATE drivers
		SET latitude = $1, longitude = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, location.Latitude, location.Longitude, at, id)
	if err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return drivers.ErrDriverNotFound
	}
	return nil
}
