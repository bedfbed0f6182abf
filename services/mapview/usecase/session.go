package usecase

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	appctx "github.com/ryde/ryde/internal/pkg/context"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/services/mapview"
	"github.com/ryde/ryde/services/mapview/geo"
)

// Session is the map state of one rider. Each input change starts a
// derivation pass; only the most recently started pass may commit.
type Session struct {
	id         string
	directory  mapview.DirectoryGW
	enricher   *geo.Enricher
	generation atomic.Uint64

	mu         sync.Mutex
	cancelPass context.CancelFunc
	// pending holds the inputs of the latest pass, shown those of the
	// pass that produced region and markers
	pending   passInput
	shown     passInput
	selected  *int64
	committed uint64
	region    models.Region
	markers   []models.MapMarker
}

type passInput struct {
	user               *models.GeoPoint
	userAddress        string
	destination        *models.GeoPoint
	destinationAddress string
	radiusKm           float64
}

// NewSession creates an empty session showing the default region
func NewSession(id string, directory mapview.DirectoryGW, enricher *geo.Enricher, radiusKm float64) *Session {
	return &Session{
		id:        id,
		directory: directory,
		enricher:  enricher,
		pending:   passInput{radiusKm: radiusKm},
		shown:     passInput{radiusKm: radiusKm},
		region:    geo.DefaultRegion,
		markers:   []models.MapMarker{},
	}
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// SetUserLocation moves the rider
func (s *Session) SetUserLocation(ctx context.Context, location models.Place) (*mapview.Pass, error) {
	if !location.Valid() {
		return nil, mapview.ErrInvalidLocation
	}
	point := location.GeoPoint
	return s.begin(ctx, func(in *passInput) {
		in.user = &point
		in.userAddress = location.Address
	}), nil
}

// SetDestination sets or, with nil, clears the destination
func (s *Session) SetDestination(ctx context.Context, destination *models.Place) (*mapview.Pass, error) {
	if destination != nil && !destination.Valid() {
		return nil, mapview.ErrInvalidLocation
	}
	return s.begin(ctx, func(in *passInput) {
		if destination == nil {
			in.destination = nil
			in.destinationAddress = ""
			return
		}
		point := destination.GeoPoint
		in.destination = &point
		in.destinationAddress = destination.Address
	}), nil
}

// SetRadius changes the search radius
func (s *Session) SetRadius(ctx context.Context, radiusKm float64) (*mapview.Pass, error) {
	if !validRadius(radiusKm) {
		return nil, mapview.ErrInvalidRadius
	}
	return s.begin(ctx, func(in *passInput) { in.radiusKm = radiusKm }), nil
}

// SelectDriver marks a driver currently on the map as chosen
func (s *Session) SelectDriver(driverID int64) (models.MapSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !containsMarker(s.markers, driverID) {
		return models.MapSnapshot{}, mapview.ErrDriverNotInView
	}
	s.selected = &driverID
	return s.snapshotLocked(), nil
}

// ClearDriver drops the current selection
func (s *Session) ClearDriver() models.MapSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	return s.snapshotLocked()
}

// Snapshot returns a copy of the last committed state
func (s *Session) Snapshot() models.MapSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close cancels the pass in flight, if any
func (s *Session) Close() {
	s.generation.Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelPass != nil {
		s.cancelPass()
		s.cancelPass = nil
	}
}

// begin applies an input change and takes the next generation, cancelling
// the pass it supersedes. Both happen before begin returns, so passes are
// ordered by call order however they are run.
func (s *Session) begin(ctx context.Context, apply func(*passInput)) *mapview.Pass {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply(&s.pending)
	in := s.pending

	gen := s.generation.Inc()
	if s.cancelPass != nil {
		s.cancelPass()
	}
	passCtx, cancel := context.WithCancel(appctx.WithSessionID(ctx, s.id))
	s.cancelPass = cancel

	return mapview.NewPass(gen, func() (models.MapSnapshot, error) {
		defer cancel()
		return s.derive(passCtx, gen, in)
	})
}

// derive runs one pass: region, directory fetch, filtering and enrichment
func (s *Session) derive(ctx context.Context, gen uint64, in passInput) (models.MapSnapshot, error) {
	region := geo.CalculateRegion(in.user, in.destination)
	if in.user == nil {
		return s.commit(gen, in, region, []models.MapMarker{})
	}

	drivers, err := s.directory.ListDrivers(ctx, in.radiusKm)
	if err != nil {
		if s.stale(gen) {
			return models.MapSnapshot{}, mapview.ErrPassSuperseded
		}
		return models.MapSnapshot{}, err
	}

	markers := geo.GenerateMarkers(drivers, *in.user, in.radiusKm)
	if in.destination != nil && len(markers) > 0 {
		markers = s.enricher.Enrich(ctx, markers, *in.user, *in.destination)
	}

	return s.commit(gen, in, region, markers)
}

// commit swaps in the pass result unless a newer pass has started
func (s *Session) commit(gen uint64, in passInput, region models.Region, markers []models.MapMarker) (models.MapSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation.Load() {
		logger.Debug("Discarding superseded map derivation",
			logger.String("session_id", s.id),
			logger.Uint64("generation", gen))
		return models.MapSnapshot{}, mapview.ErrPassSuperseded
	}

	s.committed = gen
	s.shown = in
	s.region = region
	s.markers = markers
	if s.selected != nil && !containsMarker(markers, *s.selected) {
		s.selected = nil
	}
	return s.snapshotLocked(), nil
}

func (s *Session) stale(gen uint64) bool {
	return gen != s.generation.Load()
}

func (s *Session) snapshotLocked() models.MapSnapshot {
	snap := models.MapSnapshot{
		SessionID:          s.id,
		Generation:         s.committed,
		UserAddress:        s.shown.userAddress,
		DestinationAddress: s.shown.destinationAddress,
		RadiusKm:           s.shown.radiusKm,
		Region:             s.region,
		Markers:            models.CloneMarkers(s.markers),
	}
	if s.shown.user != nil {
		u := *s.shown.user
		snap.User = &u
	}
	if s.shown.destination != nil {
		d := *s.shown.destination
		snap.Destination = &d
	}
	if s.selected != nil {
		id := *s.selected
		snap.SelectedDriverID = &id
	}
	return snap
}

func containsMarker(markers []models.MapMarker, driverID int64) bool {
	for _, m := range markers {
		if m.ID == driverID {
			return true
		}
	}
	return false
}
