package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Ruidozo/fam-backoffice/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// OrdersSocket upgrades to WS and registers the client for order events.
// No inbound events are expected; the read loop only detects disconnects.
func (h *WSHandler) OrdersSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		wc := h.hub.Register(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(wc)
				break
			}
		}
	}
}
