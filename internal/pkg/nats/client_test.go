package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})

	t.Run("nothing listening", func(t *testing.T) {
		client, err := NewClient("nats://127.0.0.1:1")
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_IsConnected_NilConn(t *testing.T) {
	client := NewClientFromConn(nil)
	assert.False(t, client.IsConnected())
	assert.NotPanics(t, client.Close)
}
