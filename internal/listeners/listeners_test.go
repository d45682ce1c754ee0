package listeners

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"facilities-console/internal/events"
	"facilities-console/pkg/eventbus"
)

type recordingDispatcher struct {
	mu    sync.Mutex
	calls []string
}

func (d *recordingDispatcher) Dispatch(topic, messageType string, payload interface{}) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, topic+"|"+messageType)
	return 1
}

func TestListeners_ReactToEntityMutated(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := eventbus.New(zap.NewNop())
	dispatcher := &recordingDispatcher{}

	NewAuditListener(zap.New(core)).Register(bus)
	NewLiveListListener(dispatcher, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.NewEntityMutated(events.EntityBlock, events.ActionDeleted, 4))
	bus.Wait()

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, "bloques|entity.mutated", dispatcher.calls[0])

	entries := logs.FilterMessage("изменение данных").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bloques", entries[0].ContextMap()["entity"])
	assert.Equal(t, uint64(4), entries[0].ContextMap()["entity_id"])
}
