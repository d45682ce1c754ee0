package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBuffer     = 32
)

// Client - одна открытая страница живого списка. Topic - сущность списка.
type Client struct {
	Hub   *Hub
	Conn  *websocket.Conn
	ID    string
	Topic string

	// OnCommand вызывается на каждое сообщение страницы.
	OnCommand func(ClientMessage)
	// OnEvent вызывается хабом на события темы клиента.
	OnEvent func(Envelope)

	send   chan []byte
	mu     sync.Mutex
	closed bool
	logger *zap.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, id, topic string, logger *zap.Logger) *Client {
	return &Client{
		Hub:    hub,
		Conn:   conn,
		ID:     id,
		Topic:  topic,
		send:   make(chan []byte, sendBuffer),
		logger: logger,
	}
}

// Push ставит сообщение в очередь отправки. Медленный клиент теряет сообщения,
// а не блокирует отправителя.
func (c *Client) Push(envelope Envelope) bool {
	if envelope.Timestamp.IsZero() {
		envelope.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		c.logger.Error("ошибка сериализации сообщения для WebSocket", zap.Error(err))
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		c.logger.Warn("очередь клиента переполнена, сообщение отброшено", zap.String("client", c.ID))
		return false
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { _ = c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket закрыт с ошибкой", zap.String("client", c.ID), zap.Error(err))
			}
			break
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug("некорректное сообщение от страницы", zap.String("client", c.ID), zap.Error(err))
			continue
		}
		if c.OnCommand != nil {
			c.OnCommand(msg)
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
