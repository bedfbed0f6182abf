package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ryde/ryde/internal/pkg/models"
	"github.com/ryde/ryde/internal/utils"
	"github.com/ryde/ryde/services/mapview"
)

// CreateSession handles POST /sessions
func (h *MapHandler) CreateSession(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusCreated, "Session created", h.mapUC.CreateSession())
}

// GetSession handles GET /sessions/:id
func (h *MapHandler) GetSession(c echo.Context) error {
	snap, err := h.mapUC.GetSession(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", snap)
}

// CloseSession handles DELETE /sessions/:id
func (h *MapHandler) CloseSession(c echo.Context) error {
	if err := h.mapUC.CloseSession(c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session closed", nil)
}

// SetUserLocation handles PUT /sessions/:id/location
func (h *MapHandler) SetUserLocation(c echo.Context) error {
	var location models.Place
	if err := c.Bind(&location); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	pass, err := h.mapUC.SetUserLocation(c.Request().Context(), c.Param("id"), location)
	return h.respondPass(c, pass, err)
}

// SetDestination handles PUT /sessions/:id/destination
func (h *MapHandler) SetDestination(c echo.Context) error {
	var destination models.Place
	if err := c.Bind(&destination); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	pass, err := h.mapUC.SetDestination(c.Request().Context(), c.Param("id"), &destination)
	return h.respondPass(c, pass, err)
}

// ClearDestination handles DELETE /sessions/:id/destination
func (h *MapHandler) ClearDestination(c echo.Context) error {
	pass, err := h.mapUC.SetDestination(c.Request().Context(), c.Param("id"), nil)
	return h.respondPass(c, pass, err)
}

// SetRadius handles PUT /sessions/:id/radius
func (h *MapHandler) SetRadius(c echo.Context) error {
	var req models.WSRadiusUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	pass, err := h.mapUC.SetRadius(c.Request().Context(), c.Param("id"), req.RadiusKm)
	return h.respondPass(c, pass, err)
}

// SelectDriver handles PUT /sessions/:id/driver. A null driver_id clears
// the selection.
func (h *MapHandler) SelectDriver(c echo.Context) error {
	var req models.WSSelectDriver
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if req.DriverID == nil {
		snap, err := h.mapUC.ClearDriver(c.Param("id"))
		return h.respondSnapshot(c, snap, err)
	}
	snap, err := h.mapUC.SelectDriver(c.Param("id"), *req.DriverID)
	return h.respondSnapshot(c, snap, err)
}

// ClearDriver handles DELETE /sessions/:id/driver
func (h *MapHandler) ClearDriver(c echo.Context) error {
	snap, err := h.mapUC.ClearDriver(c.Param("id"))
	return h.respondSnapshot(c, snap, err)
}

// respondPass runs the pass a setter started and writes its snapshot
func (h *MapHandler) respondPass(c echo.Context, pass *mapview.Pass, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	snap, err := pass.Run()
	return h.respondSnapshot(c, snap, err)
}

// respondSnapshot writes snap, or the latest snapshot when a newer update
// overtook this request
func (h *MapHandler) respondSnapshot(c echo.Context, snap models.MapSnapshot, err error) error {
	if errors.Is(err, mapview.ErrPassSuperseded) {
		snap, err = h.mapUC.GetSession(c.Param("id"))
	}
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", snap)
}
