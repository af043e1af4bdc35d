package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans order lifecycle events out to every connected backoffice client
// so open order boards refresh without polling.
type Hub struct {
	mu      sync.RWMutex
	clients map[*wsConn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*wsConn]struct{})}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Register adds a connection and returns the handle to unregister it with.
func (h *Hub) Register(conn *websocket.Conn) *wsConn {
	wc := &wsConn{conn: conn}
	h.mu.Lock()
	h.clients[wc] = struct{}{}
	h.mu.Unlock()
	return wc
}

func (h *Hub) Unregister(wc *wsConn) {
	h.mu.Lock()
	if _, ok := h.clients[wc]; ok {
		wc.conn.Close()
		delete(h.clients, wc)
	}
	h.mu.Unlock()
}

// Broadcast sends a typed event payload to every connected client. Clients
// whose writes fail are dropped.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.RLock()
	conns := make([]*wsConn, 0, len(h.clients))
	for wc := range h.clients {
		conns = append(conns, wc)
	}
	h.mu.RUnlock()

	msg := map[string]any{"event": event, "data": payload}
	for _, wc := range conns {
		wc.mu.Lock()
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			log.Printf("ws: write failed for event %s: %v", event, err)
			h.Unregister(wc)
		}
	}
}

// ClientCount reports connected clients; used by the health endpoint.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
