package usecase

import (
	"context"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/services/mapview"
	"github.com/ryde/ryde/services/mapview/geo"
)

// DefaultRadiusKm is used when a request or session does not name a radius
const DefaultRadiusKm = 1.0

// MapUC implements mapview.MapUC
type MapUC struct {
	directory       mapview.DirectoryGW
	enricher        *geo.Enricher
	defaultRadiusKm float64

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMapUC creates a new map use case
func NewMapUC(directory mapview.DirectoryGW, enricher *geo.Enricher, cfg *models.Config) mapview.MapUC {
	radius := cfg.Map.DefaultRadiusKm
	if !validRadius(radius) {
		radius = DefaultRadiusKm
	}
	return &MapUC{
		directory:       directory,
		enricher:        enricher,
		defaultRadiusKm: radius,
		sessions:        make(map[string]*Session),
	}
}

// Region fits the viewport around the requested points
func (uc *MapUC) Region(req *models.RegionRequest) models.Region {
	if req == nil {
		return geo.DefaultRegion
	}
	return geo.CalculateRegion(req.User, req.Destination)
}

// Markers runs a single derivation without keeping any state
func (uc *MapUC) Markers(ctx context.Context, req *models.MarkersRequest) (*models.MarkersResponse, error) {
	if req.User == nil || !req.User.Valid() {
		return nil, mapview.ErrInvalidLocation
	}
	if req.Destination != nil && !req.Destination.Valid() {
		return nil, mapview.ErrInvalidLocation
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = uc.defaultRadiusKm
	}
	if !validRadius(radius) {
		return nil, mapview.ErrInvalidRadius
	}

	drivers, err := uc.directory.ListDrivers(ctx, radius)
	if err != nil {
		return nil, err
	}

	markers := geo.GenerateMarkers(drivers, *req.User, radius)
	if req.Destination != nil && len(markers) > 0 {
		markers = uc.enricher.Enrich(ctx, markers, *req.User, *req.Destination)
	}

	return &models.MarkersResponse{
		Region:  geo.CalculateRegion(req.User, req.Destination),
		Markers: markers,
	}, nil
}

// CreateSession opens a new map session
func (uc *MapUC) CreateSession() models.MapSnapshot {
	session := NewSession(uuid.NewString(), uc.directory, uc.enricher, uc.defaultRadiusKm)

	uc.mu.Lock()
	uc.sessions[session.ID()] = session
	uc.mu.Unlock()

	logger.Info("Map session created", logger.String("session_id", session.ID()))
	return session.Snapshot()
}

// GetSession returns the current snapshot of a session
func (uc *MapUC) GetSession(sessionID string) (models.MapSnapshot, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return models.MapSnapshot{}, err
	}
	return session.Snapshot(), nil
}

// CloseSession cancels any pass in flight and forgets the session
func (uc *MapUC) CloseSession(sessionID string) error {
	uc.mu.Lock()
	session, ok := uc.sessions[sessionID]
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()

	if !ok {
		return mapview.ErrSessionNotFound
	}
	session.Close()
	logger.Info("Map session closed", logger.String("session_id", sessionID))
	return nil
}

// SetUserLocation updates the rider position of a session
func (uc *MapUC) SetUserLocation(ctx context.Context, sessionID string, location models.Place) (*mapview.Pass, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	return session.SetUserLocation(ctx, location)
}

// SetDestination updates the destination of a session
func (uc *MapUC) SetDestination(ctx context.Context, sessionID string, destination *models.Place) (*mapview.Pass, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	return session.SetDestination(ctx, destination)
}

// SetRadius updates the search radius of a session
func (uc *MapUC) SetRadius(ctx context.Context, sessionID string, radiusKm float64) (*mapview.Pass, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	return session.SetRadius(ctx, radiusKm)
}

// SelectDriver selects a driver shown in the session
func (uc *MapUC) SelectDriver(sessionID string, driverID int64) (models.MapSnapshot, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return models.MapSnapshot{}, err
	}
	return session.SelectDriver(driverID)
}

// ClearDriver clears the driver selection of a session
func (uc *MapUC) ClearDriver(sessionID string) (models.MapSnapshot, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return models.MapSnapshot{}, err
	}
	return session.ClearDriver(), nil
}

func (uc *MapUC) session(sessionID string) (*Session, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	session, ok := uc.sessions[sessionID]
	if !ok {
		return nil, mapview.ErrSessionNotFound
	}
	return session, nil
}

func validRadius(radiusKm float64) bool {
	return radiusKm > 0 && !math.IsInf(radiusKm, 0)
}
