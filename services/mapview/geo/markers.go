package geo

import (
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/internal/utils"
)

// GenerateMarkers returns a marker for every driver within maxDistanceKm of
// the user, in input order. Drivers without a valid position are skipped.
func GenerateMarkers(drivers []*models.Driver, user models.GeoPoint, maxDistanceKm float64) []models.MapMarker {
	markers := make([]models.MapMarker, 0, len(drivers))
	if !user.Valid() {
		return markers
	}

	for _, d := range drivers {
		if d == nil || d.Location == nil || !d.Location.Valid() {
			continue
		}

		distance := utils.CalculateDistance(user, *d.Location)
		if distance > maxDistanceKm {
			continue
		}

		markers = append(markers, models.MapMarker{
			ID:              d.ID,
			Latitude:        d.Location.Latitude,
			Longitude:       d.Location.Longitude,
			Title:           d.FullName(),
			ProfileImageURL: d.ProfileImageURL,
			CarImageURL:     d.CarImageURL,
			CarSeats:        d.CarSeats,
			Rating:          d.Rating,
			PricePerKm:      d.PricePerKm,
			DistanceKm:      distance,
			ETAStatus:       models.ETAPending,
		})
	}

	return markers
}
