package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryde/ryde/internal/pkg/constants"
	"github.com/ryde/ryde/internal/pkg/database"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/internal/utils"
	"github.com/ryde/ryde/services/mapview/mocks"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, database.NewRedisClientFrom(client)
}

func cacheKey(precision uint) string {
	return fmt.Sprintf(constants.KeyDirectionsLeg,
		utils.EncodePoint(origin, precision),
		utils.EncodePoint(destination, precision))
}

func TestCachedDirections_MissThenHit(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, redisClient := setupCache(t)
	next := mocks.NewMockDirectionsGW(ctrl)
	expected := models.RouteLeg{DurationSeconds: 540, DistanceMeters: 3210}
	next.EXPECT().Route(gomock.Any(), origin, destination).Return(expected, nil).Times(1)

	cache := NewCachedDirections(next, redisClient, 2*time.Minute, 7)

	// Act
	first, err := cache.Route(context.Background(), origin, destination)
	require.NoError(t, err)
	second, err := cache.Route(context.Background(), origin, destination)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, expected, first)
	assert.Equal(t, expected, second)
	assert.True(t, mr.Exists(cacheKey(7)))
	assert.Equal(t, 2*time.Minute, mr.TTL(cacheKey(7)))
}

func TestCachedDirections_NearbyPointsShareEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, redisClient := setupCache(t)
	next := mocks.NewMockDirectionsGW(ctrl)
	next.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.RouteLeg{DurationSeconds: 60, DistanceMeters: 400}, nil).Times(1)

	cache := NewCachedDirections(next, redisClient, time.Minute, 5)

	_, err := cache.Route(context.Background(), origin, destination)
	require.NoError(t, err)
	nudged := models.GeoPoint{Latitude: origin.Latitude + 0.00001, Longitude: origin.Longitude}
	leg, err := cache.Route(context.Background(), nudged, destination)

	require.NoError(t, err)
	assert.Equal(t, 60.0, leg.DurationSeconds)
}

func TestCachedDirections_ProviderErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, redisClient := setupCache(t)
	next := mocks.NewMockDirectionsGW(ctrl)
	next.EXPECT().Route(gomock.Any(), origin, destination).
		Return(models.RouteLeg{}, errors.New("quota exceeded")).Times(1)

	cache := NewCachedDirections(next, redisClient, time.Minute, 7)

	_, err := cache.Route(context.Background(), origin, destination)

	assert.Error(t, err)
	assert.False(t, mr.Exists(cacheKey(7)))
}

func TestCachedDirections_MalformedEntryIsRefreshed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, redisClient := setupCache(t)
	require.NoError(t, mr.Set(cacheKey(7), "{broken"))

	next := mocks.NewMockDirectionsGW(ctrl)
	next.EXPECT().Route(gomock.Any(), origin, destination).
		Return(models.RouteLeg{DurationSeconds: 30, DistanceMeters: 100}, nil).Times(1)

	leg, err := NewCachedDirections(next, redisClient, time.Minute, 7).Route(context.Background(), origin, destination)

	require.NoError(t, err)
	assert.Equal(t, 30.0, leg.DurationSeconds)
	stored, err := mr.Get(cacheKey(7))
	require.NoError(t, err)
	assert.JSONEq(t, `{"duration_seconds":30,"distance_meters":100}`, stored)
}

func TestCachedDirections_RedisDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, redisClient := setupCache(t)
	mr.Close()

	next := mocks.NewMockDirectionsGW(ctrl)
	next.EXPECT().Route(gomock.Any(), origin, destination).
		Return(models.RouteLeg{DurationSeconds: 90, DistanceMeters: 700}, nil).Times(1)

	leg, err := NewCachedDirections(next, redisClient, time.Minute, 7).Route(context.Background(), origin, destination)

	require.NoError(t, err)
	assert.Equal(t, 90.0, leg.DurationSeconds)
}
