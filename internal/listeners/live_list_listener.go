package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"facilities-console/internal/events"
	"facilities-console/pkg/eventbus"
	"facilities-console/pkg/websocket"
)

// Dispatcher - часть хаба, нужная слушателю.
type Dispatcher interface {
	Dispatch(topic, messageType string, payload interface{}) int
}

// LiveListListener просит открытые живые списки сущности перечитать данные.
type LiveListListener struct {
	hub    Dispatcher
	logger *zap.Logger
}

func NewLiveListListener(hub Dispatcher, logger *zap.Logger) *LiveListListener {
	return &LiveListListener{hub: hub, logger: logger}
}

func (l *LiveListListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.EntityMutated, l.handleEntityMutated)
	l.logger.Info("LiveListListener подписан на событие", zap.String("event", events.EntityMutated))
}

func (l *LiveListListener) handleEntityMutated(ctx context.Context, e eventbus.Event) error {
	event, ok := e.(events.EntityMutatedEvent)
	if !ok {
		return fmt.Errorf("неверный тип события для LiveListListener: %T", e)
	}
	n := l.hub.Dispatch(event.Entity, websocket.TypeEntityMutated, event)
	l.logger.Debug("живые списки уведомлены", zap.String("entity", event.Entity), zap.Int("clients", n))
	return nil
}
