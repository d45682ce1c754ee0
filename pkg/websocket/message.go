package websocket

import "time"

// Envelope - это "конверт", в котором мы отправляем наши сообщения.
// Тип сообщения говорит странице, что делать с payload.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	TypeTable         = "table"
	TypeToast         = "toast"
	TypeEntityMutated = "entity.mutated"
)

// ClientMessage - команда от страницы живого списка.
type ClientMessage struct {
	Type   string `json:"type"`
	Search string `json:"search,omitempty"`
	Page   int    `json:"page,omitempty"`
}

const (
	CommandSearch = "search"
	CommandPage   = "page"
	CommandReload = "reload"
)

// TablePayload - новое состояние таблицы, уже отрисованное на сервере.
type TablePayload struct {
	Status string `json:"status"`
	Page   int    `json:"page"`
	Pages  int    `json:"pages"`
	Search string `json:"search"`
	HTML   string `json:"html"`
}

type ToastPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
