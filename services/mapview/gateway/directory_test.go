package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryde/ryde/services/mapview"
)

func TestDirectoryClient_ListDrivers(t *testing.T) {
	tests := []struct {
		name          string
		radius        float64
		status        int
		body          string
		expectedQuery string
		expectedIDs   []int64
		expectError   bool
	}{
		{
			name:          "success",
			radius:        1,
			status:        http.StatusOK,
			body:          `{"success":true,"data":[{"id":1,"first_name":"James","location":{"latitude":37.775,"longitude":-122.4195}},{"id":2,"first_name":"Ana"}]}`,
			expectedQuery: "1",
			expectedIDs:   []int64{1, 2},
		},
		{
			name:          "fractional radius",
			radius:        2.5,
			status:        http.StatusOK,
			body:          `{"success":true,"data":[]}`,
			expectedQuery: "2.5",
			expectedIDs:   []int64{},
		},
		{
			name:          "null data",
			radius:        5,
			status:        http.StatusOK,
			body:          `{"success":true}`,
			expectedQuery: "5",
			expectedIDs:   []int64{},
		},
		{
			name:          "server error",
			radius:        1,
			status:        http.StatusInternalServerError,
			body:          `{"success":false,"error":"Internal Server Error"}`,
			expectedQuery: "1",
			expectError:   true,
		},
		{
			name:          "unsuccessful envelope",
			radius:        1,
			status:        http.StatusOK,
			body:          `{"success":false,"error":"boom"}`,
			expectedQuery: "1",
			expectError:   true,
		},
		{
			name:          "malformed body",
			radius:        1,
			status:        http.StatusOK,
			body:          `not json`,
			expectedQuery: "1",
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				assert.Equal(t, "/drivers", r.URL.Path)
				assert.Equal(t, tt.expectedQuery, r.URL.Query().Get("radius"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewDirectoryClient(server.URL, time.Second)

			// Act
			drivers, err := client.ListDrivers(context.Background(), tt.radius)

			// Assert
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "directory calls are never retried")
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, mapview.ErrDriverFetchFailed)
				assert.Nil(t, drivers)
				return
			}
			require.NoError(t, err)
			ids := make([]int64, 0, len(drivers))
			for _, d := range drivers {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestDirectoryClient_ListDrivers_DecodesLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"last_name":"Wilson","price_per_km":1.25,"location":{"latitude":37.775,"longitude":-122.4195}},{"id":2}]}`))
	}))
	defer server.Close()

	drivers, err := NewDirectoryClient(server.URL, time.Second).ListDrivers(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, drivers, 2)
	require.NotNil(t, drivers[0].Location)
	assert.Equal(t, 37.775, drivers[0].Location.Latitude)
	assert.Equal(t, 1.25, drivers[0].PricePerKm)
	assert.Nil(t, drivers[1].Location)
}

func TestDirectoryClient_ListDrivers_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewDirectoryClient(url, time.Second).ListDrivers(context.Background(), 1)

	assert.ErrorIs(t, err, mapview.ErrDriverFetchFailed)
}
