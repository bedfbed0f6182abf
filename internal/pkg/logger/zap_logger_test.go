package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core)), logs
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		level   zapcore.Level
		message string
	}{
		{name: "success", status: http.StatusOK, level: zapcore.InfoLevel, message: "Request processed"},
		{name: "client error", status: http.StatusBadRequest, level: zapcore.WarnLevel, message: "Client error"},
		{name: "server error", status: http.StatusBadGateway, level: zapcore.ErrorLevel, message: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, logs := newObservedLogger()

			l.LogHTTPRequest(nil, http.MethodGet, "/drivers", "127.0.0.1", "req-1", tt.status, 5*time.Millisecond, errors.New("boom"))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, int64(tt.status), entry.ContextMap()["status"])
			assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
		})
	}
}

func TestZapEchoMiddleware_LogsFinalStatus(t *testing.T) {
	l, logs := newObservedLogger()

	e := echo.New()
	e.Use(ZapEchoMiddleware(l))
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	req := httptest.NewRequest(http.MethodGet, "/missing?x=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "/missing?x=1", entry.ContextMap()["path"])
}

func TestGlobalLogger_FallsBackToNop(t *testing.T) {
	SetGlobalLogger(nil)
	assert.NotPanics(t, func() {
		Info("no logger configured", String("k", "v"))
	})

	l, logs := newObservedLogger()
	SetGlobalLogger(l)
	defer SetGlobalLogger(nil)

	Warn("configured", Int("n", 3))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "configured", logs.All()[0].Message)
}
