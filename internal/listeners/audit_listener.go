package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"facilities-console/internal/events"
	"facilities-console/pkg/eventbus"
)

// AuditListener пишет в журнал каждое успешное изменение данных через консоль.
type AuditListener struct {
	logger *zap.Logger
}

func NewAuditListener(logger *zap.Logger) *AuditListener {
	return &AuditListener{logger: logger.Named("audit")}
}

func (l *AuditListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.EntityMutated, l.handleEntityMutated)
	l.logger.Info("AuditListener подписан на событие", zap.String("event", events.EntityMutated))
}

func (l *AuditListener) handleEntityMutated(ctx context.Context, e eventbus.Event) error {
	event, ok := e.(events.EntityMutatedEvent)
	if !ok {
		return fmt.Errorf("неверный тип события для AuditListener: %T", e)
	}
	l.logger.Info("изменение данных",
		zap.String("event_id", event.ID),
		zap.String("entity", event.Entity),
		zap.String("action", string(event.Action)),
		zap.Uint64("entity_id", event.EntityID),
		zap.Time("at", event.OccurredAt),
	)
	return nil
}
