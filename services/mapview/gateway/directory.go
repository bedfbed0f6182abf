package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	httpclient "github.com/ryde/ryde/internal/pkg/http"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/internal/utils"
	"github.com/ryde/ryde/services/mapview"
)

// DirectoryClient reads drivers from the drivers service over HTTP.
// Calls are not retried; a failure reaches the rider as a fetch error.
type DirectoryClient struct {
	client *httpclient.Client
}

// NewDirectoryClient creates a client for the drivers service at baseURL
func NewDirectoryClient(baseURL string, timeout time.Duration) *DirectoryClient {
	return NewDirectoryClientFrom(httpclient.NewClient(httpclient.Config{
		BaseURL: baseURL,
		Timeout: timeout,
	}))
}

// NewDirectoryClientFrom wraps an existing HTTP client
func NewDirectoryClientFrom(client *httpclient.Client) *DirectoryClient {
	return &DirectoryClient{client: client}
}

// ListDrivers fetches GET /drivers?radius=<km>
func (c *DirectoryClient) ListDrivers(ctx context.Context, radiusKm float64) ([]*models.Driver, error) {
	query := url.Values{}
	query.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))

	body, err := c.client.Get(ctx, "/drivers", query)
	if err != nil {
		logger.Error("Failed to fetch drivers",
			logger.Float64("radius_km", radiusKm),
			logger.ErrorField(err))
		return nil, fmt.Errorf("%w: %w", mapview.ErrDriverFetchFailed, err)
	}

	var drivers []*models.Driver
	if err := utils.ParseJSONResponse(body, &drivers); err != nil {
		logger.Error("Failed to parse drivers response", logger.ErrorField(err))
		return nil, fmt.Errorf("%w: %w", mapview.ErrDriverFetchFailed, err)
	}
	if drivers == nil {
		drivers = []*models.Driver{}
	}

	return drivers, nil
}
