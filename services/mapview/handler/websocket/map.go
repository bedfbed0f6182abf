package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sourcegraph/conc"

	"github.com/ryde/ryde/internal/pkg/constants"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
	wspkg "github.com/ryde/ryde/internal/pkg/websocket"
	"github.com/ryde/ryde/services/mapview"
)

// MapWSHandler drives one map session per WebSocket connection
type MapWSHandler struct {
	mapUC   mapview.MapUC
	manager *wspkg.Manager
}

// NewMapWSHandler creates a new map WebSocket handler
func NewMapWSHandler(mapUC mapview.MapUC, manager *wspkg.Manager) *MapWSHandler {
	return &MapWSHandler{
		mapUC:   mapUC,
		manager: manager,
	}
}

// HandleWebSocket handles GET /ws/map
func (h *MapWSHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serve)
}

// connection pushes snapshots to one client, never older than the last one sent
type connection struct {
	client    *wspkg.Client
	sessionID string

	mu       sync.Mutex
	lastSent uint64
}

func (conn *connection) push(snap models.MapSnapshot) {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	if snap.Generation < conn.lastSent {
		return
	}
	conn.lastSent = snap.Generation
	if err := conn.client.Send(constants.EventMapUpdate, snap); err != nil {
		logger.Warn("Failed to push map update",
			logger.String("session_id", conn.sessionID),
			logger.Err(err))
	}
}

func (conn *connection) sendError(code, message string) {
	if err := conn.client.SendError(code, message); err != nil {
		logger.Warn("Failed to send error event",
			logger.String("session_id", conn.sessionID),
			logger.String("code", code),
			logger.Err(err))
	}
}

func (h *MapWSHandler) serve(client *wspkg.Client) error {
	snap := h.mapUC.CreateSession()
	conn := &connection{client: client, sessionID: snap.SessionID}

	ctx, cancel := context.WithCancel(context.Background())
	var passes conc.WaitGroup
	defer passes.Wait()
	defer h.closeSession(conn.sessionID)
	defer cancel()

	logger.Info("Map client connected",
		logger.String("client_id", client.ID),
		logger.String("session_id", conn.sessionID))
	conn.push(snap)

	for {
		msg, err := client.ReadMessage()
		if err != nil {
			if errors.Is(err, wspkg.ErrInvalidMessage) {
				conn.sendError(constants.ErrorInvalidFormat, "message must be a JSON event")
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Map client connection lost",
					logger.String("session_id", conn.sessionID),
					logger.Err(err))
			}
			return nil
		}

		h.handleMessage(ctx, conn, msg, &passes)
	}
}

func (h *MapWSHandler) closeSession(sessionID string) {
	if err := h.mapUC.CloseSession(sessionID); err != nil {
		logger.Warn("Failed to close map session", logger.String("session_id", sessionID), logger.Err(err))
	}
}

// handleMessage dispatches one client event. Events that rederive the map
// are applied here, in arrival order, and derived in the background so a
// newer event can supersede them.
func (h *MapWSHandler) handleMessage(ctx context.Context, conn *connection, msg models.WSMessage, passes *conc.WaitGroup) {
	switch msg.Event {
	case constants.EventPing:
		if err := conn.client.Send(constants.EventPong, nil); err != nil {
			logger.Debug("Failed to send pong", logger.Err(err))
		}

	case constants.EventLocationUpdate:
		var location models.Place
		if err := json.Unmarshal(msg.Data, &location); err != nil {
			conn.sendError(constants.ErrorInvalidFormat, "invalid location payload")
			return
		}
		pass, err := h.mapUC.SetUserLocation(ctx, conn.sessionID, location)
		h.runPass(conn, passes, pass, err)

	case constants.EventDestinationUpdate:
		var destination *models.Place
		if err := json.Unmarshal(msg.Data, &destination); err != nil {
			conn.sendError(constants.ErrorInvalidFormat, "invalid destination payload")
			return
		}
		pass, err := h.mapUC.SetDestination(ctx, conn.sessionID, destination)
		h.runPass(conn, passes, pass, err)

	case constants.EventRadiusUpdate:
		var update models.WSRadiusUpdate
		if err := json.Unmarshal(msg.Data, &update); err != nil {
			conn.sendError(constants.ErrorInvalidFormat, "invalid radius payload")
			return
		}
		pass, err := h.mapUC.SetRadius(ctx, conn.sessionID, update.RadiusKm)
		h.runPass(conn, passes, pass, err)

	case constants.EventSelectDriver:
		var selection models.WSSelectDriver
		if err := json.Unmarshal(msg.Data, &selection); err != nil {
			conn.sendError(constants.ErrorInvalidFormat, "invalid selection payload")
			return
		}
		var snap models.MapSnapshot
		var err error
		if selection.DriverID == nil {
			snap, err = h.mapUC.ClearDriver(conn.sessionID)
		} else {
			snap, err = h.mapUC.SelectDriver(conn.sessionID, *selection.DriverID)
		}
		h.respond(conn, snap, err)

	default:
		conn.sendError(constants.ErrorUnknownEvent, "unknown event: "+msg.Event)
	}
}

// runPass derives a started pass in the background
func (h *MapWSHandler) runPass(conn *connection, passes *conc.WaitGroup, pass *mapview.Pass, err error) {
	if err != nil {
		h.respond(conn, models.MapSnapshot{}, err)
		return
	}
	passes.Go(func() {
		snap, err := pass.Run()
		h.respond(conn, snap, err)
	})
}

func (h *MapWSHandler) respond(conn *connection, snap models.MapSnapshot, err error) {
	switch {
	case err == nil:
		conn.push(snap)
	case errors.Is(err, mapview.ErrPassSuperseded):
		// a newer update will push its own snapshot
	case errors.Is(err, mapview.ErrDriverFetchFailed):
		conn.sendError(constants.ErrorDriverFetchFailed, constants.MessageDriverFetchFailed)
	case errors.Is(err, mapview.ErrInvalidLocation):
		conn.sendError(constants.ErrorInvalidLocation, err.Error())
	case errors.Is(err, mapview.ErrInvalidRadius):
		conn.sendError(constants.ErrorValidationFailed, err.Error())
	case errors.Is(err, mapview.ErrDriverNotInView):
		conn.sendError(constants.ErrorDriverNotFound, err.Error())
	default:
		logger.Error("Map update failed",
			logger.String("session_id", conn.sessionID),
			logger.Err(err))
		conn.sendError(constants.ErrorInternalError, "internal error")
	}
}
