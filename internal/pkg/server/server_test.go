package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ryde/ryde/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNop(), 8080, 0)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)

	gs = NewGracefulServer(echo.New(), logger.NewNop(), 8080, 5*time.Second)
	assert.Equal(t, 5*time.Second, gs.shutdownTimeout)
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, logger.NewNop(), 0, time.Second)

	var order []string
	gs.OnShutdown(func(context.Context) error {
		order = append(order, "nats")
		return nil
	})
	gs.OnShutdown(func(context.Context) error {
		order = append(order, "redis")
		return errors.New("already closed")
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, []string{"nats", "redis"}, order)
}

func TestGracefulServer_RunReturnsListenError(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, logger.NewNop(), -1, time.Second)

	err := gs.Run(context.Background())

	assert.Error(t, err)
}
