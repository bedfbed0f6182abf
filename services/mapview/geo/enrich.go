package geo

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	appctx "github.com/ryde/ryde/internal/pkg/context"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/services/mapview"
)

const (
	DefaultEnrichConcurrency = 8
	DefaultCurrencySymbol    = "$"
)

// EnricherConfig tunes an Enricher
type EnricherConfig struct {
	// Concurrency bounds the markers estimated at once
	Concurrency int
	// Timeout bounds each directions call; zero means no per-call bound
	Timeout        time.Duration
	CurrencySymbol string
}

// Enricher decorates markers with the time and fare of a trip that picks the
// user up and drives to the destination
type Enricher struct {
	directions mapview.DirectionsGW
	cfg        EnricherConfig
}

// NewEnricher creates an Enricher backed by the directions gateway
func NewEnricher(directions mapview.DirectionsGW, cfg EnricherConfig) *Enricher {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultEnrichConcurrency
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = DefaultCurrencySymbol
	}
	return &Enricher{directions: directions, cfg: cfg}
}

type estimate struct {
	markerID int64
	minutes  float64
	price    string
	err      error
}

// Enrich returns a copy of markers with time and price set. A marker whose
// lookup fails stays in place with status unavailable; markers is not modified.
func (e *Enricher) Enrich(ctx context.Context, markers []models.MapMarker, user, destination models.GeoPoint) []models.MapMarker {
	out := models.CloneMarkers(markers)
	if len(out) == 0 {
		return out
	}

	p := pool.NewWithResults[estimate]().WithMaxGoroutines(e.cfg.Concurrency)
	for _, m := range out {
		m := m
		p.Go(func() estimate {
			return e.estimate(ctx, m, user, destination)
		})
	}

	byID := make(map[int64]estimate, len(out))
	for _, est := range p.Wait() {
		byID[est.markerID] = est
	}

	for i := range out {
		est, ok := byID[out[i].ID]
		if !ok || est.err != nil {
			if ok {
				logger.Warn("Failed to estimate trip for driver",
					logger.String("session_id", appctx.GetSessionID(ctx)),
					logger.Int64("driver_id", out[i].ID),
					logger.Err(est.err))
			}
			out[i].Time = nil
			out[i].Price = nil
			out[i].ETAStatus = models.ETAUnavailable
			continue
		}
		minutes, price := est.minutes, est.price
		out[i].Time = &minutes
		out[i].Price = &price
		out[i].ETAStatus = models.ETAReady
	}

	return out
}

// estimate fetches the pickup leg and the trip leg of one marker concurrently
func (e *Enricher) estimate(ctx context.Context, m models.MapMarker, user, destination models.GeoPoint) estimate {
	driver := m.Point()
	var pickup, trip models.RouteLeg

	legs := pool.New().WithErrors()
	legs.Go(func() error {
		leg, err := e.route(ctx, user, driver)
		pickup = leg
		return err
	})
	legs.Go(func() error {
		leg, err := e.route(ctx, driver, destination)
		trip = leg
		return err
	})
	if err := legs.Wait(); err != nil {
		return estimate{markerID: m.ID, err: err}
	}

	seconds := pickup.DurationSeconds + trip.DurationSeconds
	km := (pickup.DistanceMeters + trip.DistanceMeters) / 1000

	return estimate{
		markerID: m.ID,
		minutes:  seconds / 60,
		price:    FormatPrice(e.cfg.CurrencySymbol, m.PricePerKm*km),
	}
}

func (e *Enricher) route(ctx context.Context, origin, destination models.GeoPoint) (models.RouteLeg, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}
	return e.directions.Route(ctx, origin, destination)
}

// FormatPrice renders amount with two decimals after the currency symbol
func FormatPrice(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
