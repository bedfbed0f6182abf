package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/internal/utils"
	"github.com/ryde/ryde/services/drivers"
)

// DriverHandler handles HTTP requests for the driver directory
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
	}
}

// ListDrivers handles GET /drivers?radius=<km>. A missing or non numeric
// radius selects the unfiltered tier.
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			radius = parsed
		}
	}
	if radius < 0 {
		return utils.BadRequestResponse(c, "radius must not be negative")
	}

	list, err := h.driverUC.ListDrivers(c.Request().Context(), radius)
	if err != nil {
		logger.Error("Failed to list drivers",
			logger.Float64("radius_km", radius),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Internal Server Error")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetDriver handles GET /drivers/:id
func (h *DriverHandler) GetDriver(c echo.Context) error {
	id, err := parseDriverID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid driver id")
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, drivers.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		logger.Error("Failed to get driver", logger.Int64("driver_id", id), logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", driver)
}

// UpdateLocation handles PUT /drivers/:id/location
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	id, err := parseDriverID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid driver id")
	}

	var location models.GeoPoint
	if err := c.Bind(&location); err != nil {
		logger.Warn("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	update := &models.DriverLocationUpdate{
		DriverID: id,
		Location: location,
	}

	if err := h.driverUC.UpdateDriverLocation(c.Request().Context(), update); err != nil {
		switch {
		case errors.Is(err, drivers.ErrInvalidLocation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, drivers.ErrDriverNotFound):
			return utils.NotFoundResponse(c, "Driver not found")
		}
		logger.Error("Failed to update driver location", logger.Int64("driver_id", id), logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", update)
}

func parseDriverID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid driver id")
	}
	return id, nil
}
