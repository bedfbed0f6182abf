package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ryde/ryde/internal/pkg/constants"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	natspkg "github.com/ryde/ryde/internal/pkg/nats"
	"github.com/ryde/ryde/services/drivers"
)

// LocationHandler consumes driver position reports from NATS
type LocationHandler struct {
	driverUC   drivers.DriverUC
	natsClient *natspkg.Client
}

// NewLocationHandler creates a new location NATS handler
func NewLocationHandler(driverUC drivers.DriverUC, client *natspkg.Client) *LocationHandler {
	return &LocationHandler{
		driverUC:   driverUC,
		natsClient: client,
	}
}

// InitNATSConsumers subscribes the location queue group
func (h *LocationHandler) InitNATSConsumers() error {
	logger.Info("Initializing NATS consumers for drivers service",
		logger.String("subject", constants.SubjectDriverLocationUpdated),
		logger.String("queue_group", constants.QueueDriverLocation))

	if err := h.natsClient.Subscribe(
		constants.SubjectDriverLocationUpdated,
		constants.QueueDriverLocation,
		h.handleLocationUpdate,
	); err != nil {
		return fmt.Errorf("failed to subscribe to location updates: %w", err)
	}
	return nil
}

// handleLocationUpdate processes one location report. Reports are fire and
// forget, so a rejected one is logged and dropped.
func (h *LocationHandler) handleLocationUpdate(msg []byte) error {
	var update models.DriverLocationUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		logger.Error("Failed to unmarshal location update", logger.Err(err))
		return err
	}

	logger.Debug("Received location update",
		logger.Int64("driver_id", update.DriverID),
		logger.Float64("latitude", update.Location.Latitude),
		logger.Float64("longitude", update.Location.Longitude))

	if err := h.driverUC.UpdateDriverLocation(context.Background(), &update); err != nil {
		logger.Error("Failed to store location update",
			logger.Int64("driver_id", update.DriverID),
			logger.Err(err))
		return err
	}
	return nil
}
