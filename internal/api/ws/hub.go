package ws

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"vibevoyager/internal/infra"
)

// changeEvent is the frame pushed to every connected client after an archive
// mutation. It is the cross-context analogue of a storage event: clients
// re-read the named key when they receive it.
type changeEvent struct {
	Key    string `json:"key"`
	Action string `json:"action"`
}

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- msg:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}

		case <-h.done:
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// NotifyChanged broadcasts a change frame for the given storage key.
func (h *Hub) NotifyChanged(key string) {
	data, err := json.Marshal(changeEvent{Key: key, Action: "changed"})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

// Relay pumps notifier events for key into the hub until the subscription is
// cancelled. Run it in its own goroutine.
func (h *Hub) Relay(notifier infra.Notifier, key string) func() {
	events, cancel := notifier.Subscribe(key)
	go func() {
		for k := range events {
			h.NotifyChanged(k)
		}
	}()
	return cancel
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// ServeWS upgrades the connection and attaches it to the hub.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{Conn: conn, Send: make(chan []byte, 16)}
	h.register <- client

	go writePump(client)
	go readPump(client, h)
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump discards inbound frames; the feed is one-way. Its job is to
// detect the close handshake and unregister the client.
func readPump(c *Client, h *Hub) {
	defer func() {
		h.unregister <- c
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
