package handler

import (
	"github.com/labstack/echo/v4"
	wspkg "github.com/ryde/ryde/internal/pkg/websocket"
	"github.com/ryde/ryde/services/mapview"
	httpHandler "github.com/ryde/ryde/services/mapview/handler/http"
	wsHandler "github.com/ryde/ryde/services/mapview/handler/websocket"
)

// Handler combines the HTTP and WebSocket handlers of the map view service
type Handler struct {
	mapHTTP *httpHandler.MapHandler
	mapWS   *wsHandler.MapWSHandler
}

// NewHandler creates a new combined handler
func NewHandler(mapUC mapview.MapUC, manager *wspkg.Manager) *Handler {
	return &Handler{
		mapHTTP: httpHandler.NewMapHandler(mapUC),
		mapWS:   wsHandler.NewMapWSHandler(mapUC, manager),
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	mapGroup := e.Group("/map")
	mapGroup.POST("/region", h.mapHTTP.Region)
	mapGroup.POST("/markers", h.mapHTTP.Markers)

	sessions := e.Group("/sessions")
	sessions.POST("", h.mapHTTP.CreateSession)
	sessions.GET("/:id", h.mapHTTP.GetSession)
	sessions.DELETE("/:id", h.mapHTTP.CloseSession)
	sessions.PUT("/:id/location", h.mapHTTP.SetUserLocation)
	sessions.PUT("/:id/destination", h.mapHTTP.SetDestination)
	sessions.DELETE("/:id/destination", h.mapHTTP.ClearDestination)
	sessions.PUT("/:id/radius", h.mapHTTP.SetRadius)
	sessions.PUT("/:id/driver", h.mapHTTP.SelectDriver)
	sessions.DELETE("/:id/driver", h.mapHTTP.ClearDriver)

	e.GET("/ws/map", h.mapWS.HandleWebSocket)
}
