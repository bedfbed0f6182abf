package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ryde/ryde/internal/pkg/circuitbreaker"
	httpclient "github.com/ryde/ryde/internal/pkg/http"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/internal/pkg/retry"
	"github.com/ryde/ryde/services/mapview"
)

const directionsStatusOK = "OK"

type directionsValue struct {
	Value float64 `json:"value"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Routes       []struct {
		Legs []struct {
			Duration directionsValue `json:"duration"`
			Distance directionsValue `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// DirectionsClient calls the Google Directions API
type DirectionsClient struct {
	client *httpclient.Client
	apiKey string
}

// NewDirectionsClient creates a directions client guarded by a circuit
// breaker with retries for transient failures
func NewDirectionsClient(cfg models.DirectionsConfig) *DirectionsClient {
	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = httpclient.IsRetryable

	client := httpclient.NewClient(
		httpclient.Config{BaseURL: cfg.BaseURL, Timeout: cfg.Timeout},
		httpclient.WithCircuitBreaker(circuitbreaker.New(circuitbreaker.DefaultConfig("directions"))),
		httpclient.WithRetrier(retry.New(retryConfig)),
	)
	return NewDirectionsClientFrom(client, cfg.APIKey)
}

// NewDirectionsClientFrom wraps an existing HTTP client
func NewDirectionsClientFrom(client *httpclient.Client, apiKey string) *DirectionsClient {
	return &DirectionsClient{client: client, apiKey: apiKey}
}

// Route returns the duration and distance of the first leg of the first route
func (c *DirectionsClient) Route(ctx context.Context, origin, destination models.GeoPoint) (models.RouteLeg, error) {
	query := url.Values{}
	query.Set("origin", formatPoint(origin))
	query.Set("destination", formatPoint(destination))
	query.Set("key", c.apiKey)

	var resp directionsResponse
	if err := c.client.GetJSON(ctx, "", query, &resp); err != nil {
		return models.RouteLeg{}, fmt.Errorf("%w: %w", mapview.ErrDirectionsFailed, err)
	}
	if resp.Status != directionsStatusOK {
		return models.RouteLeg{}, fmt.Errorf("%w: status %s %s", mapview.ErrDirectionsFailed, resp.Status, resp.ErrorMessage)
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return models.RouteLeg{}, fmt.Errorf("%w: response has no route legs", mapview.ErrDirectionsFailed)
	}

	leg := resp.Routes[0].Legs[0]
	return models.RouteLeg{
		DurationSeconds: leg.Duration.Value,
		DistanceMeters:  leg.Distance.Value,
	}, nil
}

func formatPoint(p models.GeoPoint) string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}
