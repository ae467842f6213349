package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

// WSHub fans state-change notifications out to the browser clients watching
// this club. The reconciled stores call Notify through their change
// listeners; every connected client then refetches (or receives) the fresh
// snapshot.
type WSHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewWSHub() *WSHub {
	return &WSHub{clients: map[*websocket.Conn]bool{}}
}

func (h *WSHub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)

	if err != nil {
		c.Error(err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// This keeps the connection alive until the client disconnects
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()

	conn.Close()
}

// Notify pushes a JSON frame to every connected client, dropping
// connections that fail to write.
func (h *WSHub) Notify(message any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(message); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
