package services

import (
	"context"

	"facilities-console/pkg/eventbus"
)

// EventPublisher - то, что сервисам нужно от шины событий.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}
