package websocket

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub хранит открытые страницы живых списков, сгруппированные по теме (сущности).
type Hub struct {
	topics     map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		topics:     make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger.Named("ws_hub"),
	}
}

// Run обслуживает регистрацию до отмены ctx, затем закрывает всех клиентов.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.topics[client.Topic] == nil {
				h.topics[client.Topic] = make(map[*Client]struct{})
			}
			h.topics[client.Topic][client] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("клиент зарегистрирован", zap.String("client", client.ID), zap.String("topic", client.Topic))
		case client := <-h.unregister:
			h.remove(client)
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for topic, clients := range h.topics {
				for c := range clients {
					c.close()
				}
				delete(h.topics, topic)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register и Unregister после остановки Run ничего не делают.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.close()
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.topics[client.Topic]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	client.close()
	if len(clients) == 0 {
		delete(h.topics, client.Topic)
	}
	h.logger.Debug("клиент отсоединен", zap.String("client", client.ID), zap.String("topic", client.Topic))
}

// Dispatch доставляет событие всем клиентам темы: серверный обработчик OnEvent
// и сам конверт странице. Возвращает число клиентов.
func (h *Hub) Dispatch(topic, messageType string, payload interface{}) int {
	envelope := Envelope{Type: messageType, Payload: payload, Timestamp: time.Now().UTC()}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.topics[topic]))
	for c := range h.topics[topic] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if c.OnEvent != nil {
			c.OnEvent(envelope)
		}
		c.Push(envelope)
	}
	return len(clients)
}

func (h *Hub) ClientCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
