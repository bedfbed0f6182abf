package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ryde/ryde/internal/pkg/models"
	natspkg "github.com/ryde/ryde/internal/pkg/nats"
	"github.com/ryde/ryde/services/drivers/mocks"
)

func TestHandler_RegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverUC := mocks.NewMockDriverUC(ctrl)
	driverUC.EXPECT().ListDrivers(gomock.Any(), 2.0).Return([]*models.Driver{{ID: 1}}, nil)

	e := echo.New()
	NewHandler(driverUC, &natspkg.Client{}).RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drivers?radius=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	assert.True(t, registered["GET /drivers/:id"])
	assert.True(t, registered["PUT /drivers/:id/location"])
}
