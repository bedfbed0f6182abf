package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ryde/ryde/internal/pkg/constants"
	"github.com/ryde/ryde/internal/pkg/database"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/services/drivers"
)

// LocationCache keeps live driver positions in a Redis GEO set
type LocationCache struct {
	redisClient *database.RedisClient
}

// NewLocationCache creates a new Redis backed location cache
func NewLocationCache(redisClient *database.RedisClient) drivers.LocationCache {
	return &LocationCache{redisClient: redisClient}
}

// SetPosition stores the latest position of a driver
func (c *LocationCache) SetPosition(ctx context.Context, id int64, location models.GeoPoint) error {
	member := strconv.FormatInt(id, 10)
	if err := c.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, member); err != nil {
		return fmt.Errorf("failed to store driver position: %w", err)
	}
	return nil
}

// GetPositions looks up the live positions of ids
func (c *LocationCache) GetPositions(ctx context.Context, ids []int64) (map[int64]models.GeoPoint, error) {
	positions := make(map[int64]models.GeoPoint, len(ids))
	if len(ids) == 0 {
		return positions, nil
	}

	members := make([]string, len(ids))
	for i, id := range ids {
		members[i] = strconv.FormatInt(id, 10)
	}

	result, err := c.redisClient.GeoPos(ctx, constants.KeyDriverGeo, members...)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver positions: %w", err)
	}

	for i, pos := range result {
		if pos == nil || i >= len(ids) {
			continue
		}
		positions[ids[i]] = models.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude}
	}
	return positions, nil
}
