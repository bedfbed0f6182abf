package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/ryde/ryde/internal/pkg/constants"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/ryde/ryde/internal/pkg/models"
)

const writeTimeout = 10 * time.Second

// ErrInvalidMessage is returned by ReadMessage for frames that are not a
// JSON event. The connection stays usable.
var ErrInvalidMessage = errors.New("invalid message format")

// Client is one connected WebSocket peer. Writes are serialized so results
// of concurrent derivation passes can be pushed safely.
type Client struct {
	ID   string
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewClient wraps a connection
func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{ID: id, conn: conn}
}

// Send writes an event with its JSON payload
func (cl *Client) Send(event string, data interface{}) error {
	if cl.conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	if err := cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return cl.conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// SendError writes an error event
func (cl *Client) SendError(code, message string) error {
	return cl.Send(constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}

// ReadMessage blocks until the next client event arrives
func (cl *Client) ReadMessage() (models.WSMessage, error) {
	var msg models.WSMessage
	_, data, err := cl.conn.ReadMessage()
	if err != nil {
		return msg, err
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return msg, nil
}

// Manager manages WebSocket connections
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and runs handleClient until it returns
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := NewClient(uuid.New().String(), ws)
	m.AddClient(client)
	defer func() {
		m.RemoveClient(client.ID)
		logger.Debug("WebSocket client disconnected",
			logger.String("client_id", client.ID),
			logger.Int("clients", m.Count()))
	}()

	logger.Debug("WebSocket client connected",
		logger.String("client_id", client.ID),
		logger.Int("clients", m.Count()))
	return handleClient(client)
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.ID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(id string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, id)
}

// Count returns the number of connected clients
func (m *Manager) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}
