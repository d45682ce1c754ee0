package events

import (
	"time"

	"github.com/google/uuid"
)

const EntityMutated = "entity.mutated"

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Имена сущностей совпадают с путями списков консоли и темами websocket.
const (
	EntityCampus  = "campus"
	EntityFaculty = "facultades"
	EntityBlock   = "bloques"
	EntityAsset   = "activos"
)

// EntityMutatedEvent - успешное изменение на backend, после которого открытые
// списки этой сущности должны перечитать данные.
type EntityMutatedEvent struct {
	ID         string    `json:"id"`
	Entity     string    `json:"entity"`
	Action     Action    `json:"action"`
	EntityID   uint64    `json:"entityId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewEntityMutated(entity string, action Action, entityID uint64) EntityMutatedEvent {
	return EntityMutatedEvent{
		ID:         uuid.NewString(),
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

// Name - реализуем интерфейс eventbus.Event
func (e EntityMutatedEvent) Name() string {
	return EntityMutated
}
