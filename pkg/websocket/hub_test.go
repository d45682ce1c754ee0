package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_DispatchReachesOnlyTopicClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	blocks := NewClient(hub, nil, "1", "bloques", zap.NewNop())
	campus := NewClient(hub, nil, "2", "campus", zap.NewNop())
	var events []Envelope
	blocks.OnEvent = func(e Envelope) { events = append(events, e) }

	hub.Register(blocks)
	hub.Register(campus)
	require.Eventually(t, func() bool { return hub.ClientCount("bloques") == 1 }, time.Second, time.Millisecond)

	n := hub.Dispatch("bloques", TypeEntityMutated, map[string]string{"action": "deleted"})
	assert.Equal(t, 1, n)
	require.Len(t, events, 1)

	var env Envelope
	require.NoError(t, json.Unmarshal(<-blocks.send, &env))
	assert.Equal(t, TypeEntityMutated, env.Type)
	assert.Empty(t, campus.send)
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	c := NewClient(hub, nil, "1", "campus", zap.NewNop())
	hub.Register(c)
	hub.Unregister(c)
	require.Eventually(t, func() bool { return hub.ClientCount("campus") == 0 }, time.Second, time.Millisecond)

	assert.False(t, c.Push(Envelope{Type: TypeToast}))
	_, ok := <-c.send
	assert.False(t, ok)
}

func TestClient_PushDropsWhenFull(t *testing.T) {
	c := NewClient(nil, nil, "1", "campus", zap.NewNop())
	for i := 0; i < sendBuffer; i++ {
		require.True(t, c.Push(Envelope{Type: TypeTable}))
	}
	assert.False(t, c.Push(Envelope{Type: TypeTable}))
}

func TestHub_RegisterAfterStopDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zap.NewNop())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	c := NewClient(hub, nil, "1", "activos", zap.NewNop())
	hub.Register(c)
	hub.Unregister(c)
	assert.False(t, c.Push(Envelope{Type: TypeTable}))
}
