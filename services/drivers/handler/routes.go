package handler

import (
	"github.com/labstack/echo/v4"
	natspkg "github.com/ryde/ryde/internal/pkg/nats"
	"github.com/ryde/ryde/services/drivers"
	httpHandler "github.com/ryde/ryde/services/drivers/handler/http"
)

// Handler combines the HTTP and NATS handlers of the drivers service
type Handler struct {
	driverHTTP   *httpHandler.DriverHandler
	locationNATS *LocationHandler
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		driverHTTP:   httpHandler.NewDriverHandler(driverUC),
		locationNATS: NewLocationHandler(driverUC, natsClient),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/drivers", h.driverHTTP.ListDrivers)
	e.GET("/drivers/:id", h.driverHTTP.GetDriver)
	e.PUT("/drivers/:id/location", h.driverHTTP.UpdateLocation)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.locationNATS.InitNATSConsumers()
}
