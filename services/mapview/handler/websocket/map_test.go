package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryde/ryde/internal/pkg/constants"
	"github.com/ryde/ryde/internal/pkg/models"
	wspkg "github.com/ryde/ryde/internal/pkg/websocket"
	"github.com/ryde/ryde/services/mapview"
	"github.com/ryde/ryde/services/mapview/geo"
	"github.com/ryde/ryde/services/mapview/mocks"
	"github.com/ryde/ryde/services/mapview/usecase"
)

const sessionID = "session-ws"

func dial(t *testing.T, mapUC mapview.MapUC) *websocket.Conn {
	t.Helper()
	e := echo.New()
	e.GET("/ws/map", NewMapWSHandler(mapUC, wspkg.NewManager()).HandleWebSocket)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/map"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) models.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, event, data string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: event, Data: json.RawMessage(data)}))
}

func readSnapshot(t *testing.T, conn *websocket.Conn) models.MapSnapshot {
	t.Helper()
	msg := read(t, conn)
	require.Equal(t, constants.EventMapUpdate, msg.Event)
	var snap models.MapSnapshot
	require.NoError(t, json.Unmarshal(msg.Data, &snap))
	return snap
}

func readError(t *testing.T, conn *websocket.Conn) models.WSErrorMessage {
	t.Helper()
	msg := read(t, conn)
	require.Equal(t, constants.EventError, msg.Event)
	var wsErr models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &wsErr))
	return wsErr
}

// passOf returns a pass that yields snap and err when run
func passOf(snap models.MapSnapshot, err error) *mapview.Pass {
	return mapview.NewPass(snap.Generation, func() (models.MapSnapshot, error) { return snap, err })
}

func expectSession(ctrl *gomock.Controller) (*mocks.MockMapUC, chan struct{}) {
	mapUC := mocks.NewMockMapUC(ctrl)
	closed := make(chan struct{})
	mapUC.EXPECT().CreateSession().Return(models.MapSnapshot{SessionID: sessionID, RadiusKm: 1})
	mapUC.EXPECT().CloseSession(sessionID).DoAndReturn(func(string) error {
		close(closed)
		return nil
	})
	return mapUC, closed
}

func TestMapWSHandler_SessionFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mapUC, closed := expectSession(ctrl)
	rider := models.GeoPoint{Latitude: 37.7749, Longitude: -122.4194}
	mapUC.EXPECT().SetUserLocation(gomock.Any(), sessionID, models.Place{GeoPoint: rider}).
		Return(passOf(models.MapSnapshot{SessionID: sessionID, Generation: 1, User: &rider, Markers: []models.MapMarker{{ID: 3}}}, nil), nil)
	mapUC.EXPECT().SelectDriver(sessionID, int64(3)).
		Return(models.MapSnapshot{SessionID: sessionID, Generation: 1, SelectedDriverID: func() *int64 { id := int64(3); return &id }()}, nil)
	mapUC.EXPECT().ClearDriver(sessionID).Return(models.MapSnapshot{SessionID: sessionID, Generation: 1}, nil)

	conn := dial(t, mapUC)

	initial := readSnapshot(t, conn)
	assert.Equal(t, sessionID, initial.SessionID)

	send(t, conn, constants.EventLocationUpdate, `{"latitude":37.7749,"longitude":-122.4194}`)
	snap := readSnapshot(t, conn)
	assert.Equal(t, uint64(1), snap.Generation)
	assert.Len(t, snap.Markers, 1)

	send(t, conn, constants.EventSelectDriver, `{"driver_id":3}`)
	snap = readSnapshot(t, conn)
	require.NotNil(t, snap.SelectedDriverID)
	assert.Equal(t, int64(3), *snap.SelectedDriverID)

	send(t, conn, constants.EventSelectDriver, `{"driver_id":null}`)
	snap = readSnapshot(t, conn)
	assert.Nil(t, snap.SelectedDriverID)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("session was not closed after disconnect")
	}
}

func TestMapWSHandler_Errors(t *testing.T) {
	tests := []struct {
		name         string
		event        string
		data         string
		setupMock    func(*mocks.MockMapUC)
		expectedCode string
		expectedMsg  string
	}{
		{
			name:  "directory failure",
			event: constants.EventRadiusUpdate,
			data:  `{"radius_km":2}`,
			setupMock: func(m *mocks.MockMapUC) {
				m.EXPECT().SetRadius(gomock.Any(), sessionID, 2.0).
					Return(passOf(models.MapSnapshot{}, fmt.Errorf("%w: HTTP error: 503", mapview.ErrDriverFetchFailed)), nil)
			},
			expectedCode: constants.ErrorDriverFetchFailed,
			expectedMsg:  constants.MessageDriverFetchFailed,
		},
		{
			name:  "invalid radius",
			event: constants.EventRadiusUpdate,
			data:  `{"radius_km":-1}`,
			setupMock: func(m *mocks.MockMapUC) {
				m.EXPECT().SetRadius(gomock.Any(), sessionID, -1.0).Return(nil, mapview.ErrInvalidRadius)
			},
			expectedCode: constants.ErrorValidationFailed,
		},
		{
			name:  "invalid destination",
			event: constants.EventDestinationUpdate,
			data:  `{"latitude":100,"longitude":0}`,
			setupMock: func(m *mocks.MockMapUC) {
				m.EXPECT().SetDestination(gomock.Any(), sessionID, gomock.Any()).Return(nil, mapview.ErrInvalidLocation)
			},
			expectedCode: constants.ErrorInvalidLocation,
		},
		{
			name:  "driver not on map",
			event: constants.EventSelectDriver,
			data:  `{"driver_id":5}`,
			setupMock: func(m *mocks.MockMapUC) {
				m.EXPECT().SelectDriver(sessionID, int64(5)).Return(models.MapSnapshot{}, mapview.ErrDriverNotInView)
			},
			expectedCode: constants.ErrorDriverNotFound,
		},
		{
			name:         "malformed payload",
			event:        constants.EventLocationUpdate,
			data:         `"north"`,
			setupMock:    func(*mocks.MockMapUC) {},
			expectedCode: constants.ErrorInvalidFormat,
		},
		{
			name:         "unknown event",
			event:        "teleport",
			data:         `{}`,
			setupMock:    func(*mocks.MockMapUC) {},
			expectedCode: constants.ErrorUnknownEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mapUC, closed := expectSession(ctrl)
			tt.setupMock(mapUC)

			conn := dial(t, mapUC)
			readSnapshot(t, conn)

			send(t, conn, tt.event, tt.data)
			wsErr := readError(t, conn)

			assert.Equal(t, tt.expectedCode, wsErr.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, wsErr.Message)
			}

			_ = conn.Close()
			<-closed
		})
	}
}

func TestMapWSHandler_PingAndGarbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mapUC, closed := expectSession(ctrl)
	conn := dial(t, mapUC)
	readSnapshot(t, conn)

	send(t, conn, constants.EventPing, `{}`)
	assert.Equal(t, constants.EventPong, read(t, conn).Event)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	assert.Equal(t, constants.ErrorInvalidFormat, readError(t, conn).Code)

	_ = conn.Close()
	<-closed
}

func TestMapWSHandler_SupersededPassIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mapUC, closed := expectSession(ctrl)
	mapUC.EXPECT().SetRadius(gomock.Any(), sessionID, 1.0).Return(passOf(models.MapSnapshot{}, mapview.ErrPassSuperseded), nil)
	mapUC.EXPECT().SetRadius(gomock.Any(), sessionID, 2.0).Return(passOf(models.MapSnapshot{SessionID: sessionID, Generation: 3, RadiusKm: 2}, nil), nil)

	conn := dial(t, mapUC)
	readSnapshot(t, conn)

	send(t, conn, constants.EventRadiusUpdate, `{"radius_km":1}`)
	send(t, conn, constants.EventRadiusUpdate, `{"radius_km":2}`)

	snap := readSnapshot(t, conn)
	assert.Equal(t, 2.0, snap.RadiusKm)

	_ = conn.Close()
	<-closed
}

func TestConnection_PushSkipsOlderGenerations(t *testing.T) {
	conn := &connection{client: wspkg.NewClient("c1", nil), sessionID: sessionID}

	conn.push(models.MapSnapshot{Generation: 5})
	conn.push(models.MapSnapshot{Generation: 3})
	assert.Equal(t, uint64(5), conn.lastSent)

	conn.push(models.MapSnapshot{Generation: 5})
	conn.push(models.MapSnapshot{Generation: 6})
	assert.Equal(t, uint64(6), conn.lastSent)
}

func TestMapWSHandler_LastRadiusSentWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockDirectoryGW(ctrl)
	directory.EXPECT().ListDrivers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, float64) ([]*models.Driver, error) {
			time.Sleep(time.Millisecond)
			return []*models.Driver{}, nil
		}).AnyTimes()
	enricher := geo.NewEnricher(mocks.NewMockDirectionsGW(ctrl), geo.EnricherConfig{})
	mapUC := usecase.NewMapUC(directory, enricher, &models.Config{})
	handler := NewMapWSHandler(mapUC, wspkg.NewManager())

	for trial := 0; trial < 20; trial++ {
		created := mapUC.CreateSession()
		conn := &connection{client: wspkg.NewClient("c1", nil), sessionID: created.SessionID}
		var passes conc.WaitGroup

		handler.handleMessage(context.Background(), conn, models.WSMessage{
			Event: constants.EventLocationUpdate,
			Data:  json.RawMessage(`{"latitude":37.7749,"longitude":-122.4194}`),
		}, &passes)
		for radius := 1; radius <= 5; radius++ {
			handler.handleMessage(context.Background(), conn, models.WSMessage{
				Event: constants.EventRadiusUpdate,
				Data:  json.RawMessage(fmt.Sprintf(`{"radius_km":%d}`, radius)),
			}, &passes)
		}
		passes.Wait()

		snap, err := mapUC.GetSession(created.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 5.0, snap.RadiusKm, "trial %d", trial)
		assert.Equal(t, uint64(6), snap.Generation, "trial %d", trial)
		assert.Equal(t, snap.Generation, conn.lastSent, "trial %d", trial)

		require.NoError(t, mapUC.CloseSession(created.SessionID))
	}
}
