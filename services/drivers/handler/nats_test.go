package handler

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ryde/ryde/internal/pkg/models"
	natspkg "github.com/ryde/ryde/internal/pkg/nats"
	"github.com/ryde/ryde/services/drivers"
	"github.com/ryde/ryde/services/drivers/mocks"
)

func TestLocationHandler_Constructor(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	client := &natspkg.Client{}

	// Act
	handler := NewLocationHandler(mockDriverUC, client)

	// Assert
	assert.NotNil(t, handler)
	assert.Equal(t, mockDriverUC, handler.driverUC)
	assert.Equal(t, client, handler.natsClient)
}

func TestLocationHandler_handleLocationUpdate(t *testing.T) {
	validUpdate := func() []byte {
		data, _ := json.Marshal(models.DriverLocationUpdate{
			DriverID:  7,
			Location:  models.GeoPoint{Latitude: 37.7749, Longitude: -122.4194},
			Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		})
		return data
	}

	tests := []struct {
		name        string
		eventData   []byte
		expectError bool
		setupMock   func(*mocks.MockDriverUC)
	}{
		{
			name:      "successful location update processing",
			eventData: validUpdate(),
			setupMock: func(m *mocks.MockDriverUC) {
				m.EXPECT().UpdateDriverLocation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, update *models.DriverLocationUpdate) error {
						assert.Equal(t, int64(7), update.DriverID)
						assert.Equal(t, 37.7749, update.Location.Latitude)
						return nil
					}).Times(1)
			},
		},
		{
			name:        "invalid JSON data",
			eventData:   []byte("invalid json"),
			expectError: true,
			setupMock:   func(*mocks.MockDriverUC) {},
		},
		{
			name:        "usecase rejects the report",
			eventData:   validUpdate(),
			expectError: true,
			setupMock: func(m *mocks.MockDriverUC) {
				m.EXPECT().UpdateDriverLocation(gomock.Any(), gomock.Any()).
					Return(drivers.ErrInvalidLocation).Times(1)
			},
		},
		{
			name:        "storage failure",
			eventData:   validUpdate(),
			expectError: true,
			setupMock: func(m *mocks.MockDriverUC) {
				m.EXPECT().UpdateDriverLocation(gomock.Any(), gomock.Any()).
					Return(errors.New("database error")).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDriverUC := mocks.NewMockDriverUC(ctrl)
			tt.setupMock(mockDriverUC)
			handler := NewLocationHandler(mockDriverUC, &natspkg.Client{})

			// Act
			err := handler.handleLocationUpdate(tt.eventData)

			// Assert
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
