package mapview

import (
	"context"

	"github.com/ryde/ryde/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ryde/ryde/services/mapview MapUC

// MapUC defines the map view business logic: one-off derivations and the
// per-client map sessions
type MapUC interface {
	Region(req *models.RegionRequest) models.Region
	Markers(ctx context.Context, req *models.MarkersRequest) (*models.MarkersResponse, error)

	CreateSession() models.MapSnapshot
	GetSession(sessionID string) (models.MapSnapshot, error)
	CloseSession(sessionID string) error

	// The setters below validate and apply the input in call order and
	// return the derivation pass it started. Callers must Run the pass.
	SetUserLocation(ctx context.Context, sessionID string, location models.Place) (*Pass, error)
	SetDestination(ctx context.Context, sessionID string, destination *models.Place) (*Pass, error)
	SetRadius(ctx context.Context, sessionID string, radiusKm float64) (*Pass, error)

	SelectDriver(sessionID string, driverID int64) (models.MapSnapshot, error)
	ClearDriver(sessionID string) (models.MapSnapshot, error)
}

// Pass is a derivation whose place in the session's input order is already
// fixed. Run derives the map and commits it; a pass overtaken by a newer
// one returns ErrPassSuperseded.
type Pass struct {
	generation uint64
	run        func() (models.MapSnapshot, error)
}

// NewPass wraps run as the pass with the given generation
func NewPass(generation uint64, run func() (models.MapSnapshot, error)) *Pass {
	return &Pass{generation: generation, run: run}
}

// Generation returns the generation the pass commits as
func (p *Pass) Generation() uint64 {
	return p.generation
}

// Run derives and commits the pass
func (p *Pass) Run() (models.MapSnapshot, error) {
	return p.run()
}
