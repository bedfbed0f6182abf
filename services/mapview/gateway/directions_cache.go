package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ryde/ryde/internal/pkg/constants"
	"github.com/ryde/ryde/internal/pkg/database"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/internal/utils"
	"github.com/ryde/ryde/services/mapview"
)

// CachedDirections memoizes route legs in Redis. Both endpoints are snapped
// to geohash cells, so nearby requests share an entry.
type CachedDirections struct {
	next      mapview.DirectionsGW
	redis     *database.RedisClient
	ttl       time.Duration
	precision uint
}

// NewCachedDirections wraps next with a Redis cache
func NewCachedDirections(next mapview.DirectionsGW, redisClient *database.RedisClient, ttl time.Duration, precision uint) *CachedDirections {
	return &CachedDirections{
		next:      next,
		redis:     redisClient,
		ttl:       ttl,
		precision: precision,
	}
}

// Route returns the cached leg for the pair of cells or asks the provider
func (c *CachedDirections) Route(ctx context.Context, origin, destination models.GeoPoint) (models.RouteLeg, error) {
	key := fmt.Sprintf(constants.KeyDirectionsLeg,
		utils.EncodePoint(origin, c.precision),
		utils.EncodePoint(destination, c.precision))

	cached, err := c.redis.Get(ctx, key)
	switch {
	case err == nil:
		var leg models.RouteLeg
		if jsonErr := json.Unmarshal([]byte(cached), &leg); jsonErr == nil {
			return leg, nil
		}
		logger.Warn("Discarding malformed cached route leg", logger.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger.Warn("Failed to read cached route leg", logger.String("key", key), logger.Err(err))
	}

	leg, err := c.next.Route(ctx, origin, destination)
	if err != nil {
		return models.RouteLeg{}, err
	}

	data, err := json.Marshal(leg)
	if err == nil {
		err = c.redis.Set(ctx, key, data, c.ttl)
	}
	if err != nil {
		logger.Warn("Failed to cache route leg", logger.String("key", key), logger.Err(err))
	}

	return leg, nil
}
