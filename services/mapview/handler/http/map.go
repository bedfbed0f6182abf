package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ryde/ryde/internal/pkg/constants"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/internal/utils"
	"github.com/ryde/ryde/services/mapview"
)

// MapHandler handles HTTP requests for map regions, markers and sessions
type MapHandler struct {
	mapUC mapview.MapUC
}

// NewMapHandler creates a new map HTTP handler
func NewMapHandler(mapUC mapview.MapUC) *MapHandler {
	return &MapHandler{
		mapUC: mapUC,
	}
}

// Region handles POST /map/region
func (h *MapHandler) Region(c echo.Context) error {
	var req models.RegionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.mapUC.Region(&req))
}

// Markers handles POST /map/markers
func (h *MapHandler) Markers(c echo.Context) error {
	var req models.MarkersRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.mapUC.Markers(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// respondError maps map view errors to HTTP responses
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, mapview.ErrInvalidLocation), errors.Is(err, mapview.ErrInvalidRadius):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, mapview.ErrSessionNotFound):
		return utils.NotFoundResponse(c, "Session not found")
	case errors.Is(err, mapview.ErrDriverNotInView):
		return utils.NotFoundResponse(c, "Driver not found on the map")
	case errors.Is(err, mapview.ErrDriverFetchFailed):
		return utils.BadGatewayResponse(c, constants.MessageDriverFetchFailed)
	}

	logger.Error("Map request failed",
		logger.String("path", c.Path()),
		logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "")
}
