package ws

import (
	"fmt"
	"net/http"
	"sync"

	"campuseats-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans out UI refresh hints (menu changed, shop toggled, order
// updated) to subscribed browser tabs. Hints are best-effort and
// unordered; clients refetch over HTTP on receipt.
type Hub struct {
	clients    map[string]map[*websocket.Conn]bool // topic -> connections
	broadcast  chan hint
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	log        *zap.Logger
}

type hint struct {
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}

type subscription struct {
	conn   *websocket.Conn
	topics []string
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan hint, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			for _, topic := range sub.topics {
				if h.clients[topic] == nil {
					h.clients[topic] = make(map[*websocket.Conn]bool)
				}
				h.clients[topic][sub.conn] = true
			}
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			for _, topic := range sub.topics {
				if _, ok := h.clients[topic][sub.conn]; ok {
					delete(h.clients[topic], sub.conn)
				}
			}
			h.mu.Unlock()
			sub.conn.Close()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.Topic] {
				if err := conn.WriteJSON(msg); err != nil {
					h.log.Warn("ws write failed", zap.Error(err))
					conn.Close()
					delete(h.clients[msg.Topic], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast implements services.Notifier. Drops the hint when the
// buffer is full rather than blocking a request.
func (h *Hub) Broadcast(topic string, payload any) {
	select {
	case h.broadcast <- hint{Topic: topic, Payload: payload}:
	default:
		h.log.Warn("ws broadcast buffer full, hint dropped", zap.String("topic", topic))
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket subscribes the caller to the shared refresh topics
// plus their own order topic, so order hints never leak across users.
// Route: GET /api/ws (auth required). Order hints carry only the
// display id; clients refetch their own orders over HTTP.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	sub := subscription{conn: conn, topics: []string{"menu", "shop", fmt.Sprintf("orders:%d", userID)}}
	h.register <- sub

	go func() {
		// drain reads until the peer hangs up
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- sub
				return
			}
		}
	}()
}
